package repository

import (
	"context"
	"testing"

	"github.com/madisvain/upcount/internal/db/dbtest"
	"github.com/madisvain/upcount/internal/id"
	"github.com/madisvain/upcount/internal/invoice/domain"
	storage "github.com/madisvain/upcount/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func newTestRepository(t *testing.T) (domain.Repository, *gorm.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	dbtest.SeedOrganization(t, conn, "o1", "Org")
	dbtest.SeedClient(t, conn, "c1", "o1", "Acme")
	return NewRepository(conn, id.NewGenerator()), conn
}

func counterValue(t *testing.T, conn *gorm.DB, organizationID string) int64 {
	t.Helper()
	var counter int64
	require.NoError(t, conn.Raw(
		`SELECT invoice_number_counter FROM organizations WHERE id = ?`, organizationID,
	).Scan(&counter).Error)
	return counter
}

func TestCreateInvoiceWithLineItems(t *testing.T) {
	repo, conn := newTestRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "c1",
		Date:           1700000000000,
		Currency:       "EUR",
		SubTotal:       10000,
		TaxTotal:       2000,
		Total:          12000,
		LineItems: []domain.CreateInvoiceLineItemRequest{
			{Description: strPtr("Design"), Quantity: 2, UnitPrice: 2500},
			{Description: strPtr("Development"), Quantity: 1, UnitPrice: 5000},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "2024-0001", created.Number)
	require.NotNil(t, created.ClientName)
	assert.Equal(t, "Acme", *created.ClientName)
	assert.Equal(t, int64(12000), created.Total)

	assert.Equal(t, int64(1), counterValue(t, conn, "o1"))

	items, err := repo.LineItems(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Design", *items[0].Description)
	assert.Equal(t, "Development", *items[1].Description)
	for _, item := range items {
		assert.Equal(t, "i1", item.InvoiceID)
		assert.Len(t, item.ID, 26)
	}
	assert.NotEqual(t, items[0].ID, items[1].ID)
}

func TestFailedCreateLeavesCounterUntouched(t *testing.T) {
	repo, conn := newTestRepository(t)
	ctx := context.Background()

	req := domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "c1",
		Date:           1700000000000,
		Currency:       "EUR",
	}
	_, err := repo.Create(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counterValue(t, conn, "o1"))

	_, err = repo.Create(ctx, req)
	require.Error(t, err)
	assert.True(t, storage.IsConflict(err))
	assert.Equal(t, int64(1), counterValue(t, conn, "o1"))
}

func TestListInvoicesOrdersByDateDescending(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	for _, inv := range []struct {
		id   string
		date int64
	}{
		{"i1", 1700000000000},
		{"i2", 1710000000000},
		{"i3", 1690000000000},
	} {
		_, err := repo.Create(ctx, domain.CreateInvoiceRequest{
			ID:             inv.id,
			OrganizationID: "o1",
			Number:         inv.id,
			State:          domain.StateDraft,
			ClientID:       "c1",
			Date:           inv.date,
			Currency:       "EUR",
		})
		require.NoError(t, err)
	}

	invoices, err := repo.List(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	assert.Equal(t, "i2", invoices[0].ID)
	assert.Equal(t, "i1", invoices[1].ID)
	assert.Equal(t, "i3", invoices[2].ID)
	for _, inv := range invoices {
		require.NotNil(t, inv.ClientName)
		assert.Equal(t, "Acme", *inv.ClientName)
	}
}

func TestUpdateInvoiceHeaderKeepsLineItems(t *testing.T) {
	repo, conn := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "c1",
		Date:           1700000000000,
		Currency:       "EUR",
		LineItems: []domain.CreateInvoiceLineItemRequest{
			{Description: strPtr("Design"), Quantity: 1, UnitPrice: 2500},
		},
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "i1", domain.UpdateInvoiceRequest{
		State: strPtr(domain.StateSent),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StateSent, updated.State)
	assert.Equal(t, "2024-0001", updated.Number)

	items, err := repo.LineItems(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Design", *items[0].Description)

	// The counter only advances on create.
	assert.Equal(t, int64(1), counterValue(t, conn, "o1"))
}

func TestUpdateInvoiceReplacesLineItems(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "c1",
		Date:           1700000000000,
		Currency:       "EUR",
		LineItems: []domain.CreateInvoiceLineItemRequest{
			{Description: strPtr("Design"), Quantity: 1, UnitPrice: 2500},
			{Description: strPtr("Development"), Quantity: 1, UnitPrice: 5000},
		},
	})
	require.NoError(t, err)

	before, err := repo.LineItems(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, before, 2)

	_, err = repo.Update(ctx, "i1", domain.UpdateInvoiceRequest{
		LineItems: []domain.CreateInvoiceLineItemRequest{
			{Description: strPtr("Consulting"), Quantity: 3, UnitPrice: 1000},
		},
	})
	require.NoError(t, err)

	after, err := repo.LineItems(ctx, "i1")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "Consulting", *after[0].Description)
	assert.NotEqual(t, before[0].ID, after[0].ID)
}

func TestDeleteInvoiceCascadesToLineItems(t *testing.T) {
	repo, conn := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "c1",
		Date:           1700000000000,
		Currency:       "EUR",
		LineItems: []domain.CreateInvoiceLineItemRequest{
			{Description: strPtr("Design"), Quantity: 1, UnitPrice: 2500},
		},
	})
	require.NoError(t, err)

	removed, err := repo.Delete(ctx, "i1")
	require.NoError(t, err)
	assert.True(t, removed)

	var count int64
	require.NoError(t, conn.Raw(`SELECT COUNT(*) FROM invoiceLineItems`).Scan(&count).Error)
	assert.Equal(t, int64(0), count)

	removed, err = repo.Delete(ctx, "i1")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestGetMissingInvoiceReturnsNil(t *testing.T) {
	repo, _ := newTestRepository(t)

	got, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCreateInvoiceForMissingClientFails(t *testing.T) {
	repo, conn := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.CreateInvoiceRequest{
		ID:             "i1",
		OrganizationID: "o1",
		Number:         "2024-0001",
		State:          domain.StateDraft,
		ClientID:       "ghost",
		Date:           1700000000000,
		Currency:       "EUR",
	})
	require.Error(t, err)
	assert.True(t, storage.IsForeignKey(err))
	assert.Equal(t, int64(0), counterValue(t, conn, "o1"))
}
