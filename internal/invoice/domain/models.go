package domain

// Invoice is the aggregate root over its line items. Monetary fields are
// integer minor units; totals are stored as supplied, never recomputed.
type Invoice struct {
	ID             string  `gorm:"column:id;primaryKey" json:"id"`
	OrganizationID string  `gorm:"column:organizationId" json:"organizationId"`
	Number         string  `gorm:"column:number" json:"number"`
	State          string  `gorm:"column:state" json:"state"`
	ClientID       string  `gorm:"column:clientId" json:"clientId"`
	Date           int64   `gorm:"column:date" json:"date"`
	DueDate        *int64  `gorm:"column:dueDate" json:"dueDate"`
	Currency       string  `gorm:"column:currency" json:"currency"`
	CustomerNotes  *string `gorm:"column:customerNotes" json:"customerNotes"`
	SubTotal       int64   `gorm:"column:subTotal" json:"subTotal"`
	TaxTotal       int64   `gorm:"column:taxTotal" json:"taxTotal"`
	Total          int64   `gorm:"column:total" json:"total"`
	CreatedAt      *string `gorm:"column:createdAt" json:"createdAt"`

	// Populated by joined read queries only.
	ClientName *string `gorm:"column:clientName;->" json:"clientName,omitempty"`
}

func (Invoice) TableName() string { return "invoices" }

// Invoice lifecycle states.
const (
	StateDraft     = "draft"
	StateSent      = "sent"
	StatePaid      = "paid"
	StateOverdue   = "overdue"
	StateCancelled = "cancelled"
)

// InvoiceLineItem is owned by one invoice. Its identifier is the only one the
// core mints.
type InvoiceLineItem struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	InvoiceID   string  `gorm:"column:invoiceId" json:"invoiceId"`
	Description *string `gorm:"column:description" json:"description"`
	Quantity    float64 `gorm:"column:quantity" json:"quantity"`
	UnitPrice   int64   `gorm:"column:unitPrice" json:"unitPrice"`
	TaxRate     *string `gorm:"column:taxRate" json:"taxRate"`
	CreatedAt   *string `gorm:"column:createdAt" json:"createdAt"`
}

func (InvoiceLineItem) TableName() string { return "invoiceLineItems" }

type CreateInvoiceLineItemRequest struct {
	Description *string `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   int64   `json:"unitPrice"`
	TaxRate     *string `json:"taxRate"`
}

type CreateInvoiceRequest struct {
	ID             string                         `json:"id"`
	OrganizationID string                         `json:"organizationId"`
	Number         string                         `json:"number"`
	State          string                         `json:"state"`
	ClientID       string                         `json:"clientId"`
	Date           int64                          `json:"date"`
	DueDate        *int64                         `json:"dueDate"`
	Currency       string                         `json:"currency"`
	CustomerNotes  *string                        `json:"customerNotes"`
	SubTotal       int64                          `json:"subTotal"`
	TaxTotal       int64                          `json:"taxTotal"`
	Total          int64                          `json:"total"`
	LineItems      []CreateInvoiceLineItemRequest `json:"lineItems"`
}

// UpdateInvoiceRequest patches the header with COALESCE semantics. A non-nil
// LineItems replaces the owned collection wholesale; nil leaves it untouched.
type UpdateInvoiceRequest struct {
	Number        *string                        `json:"number"`
	State         *string                        `json:"state"`
	ClientID      *string                        `json:"clientId"`
	Date          *int64                         `json:"date"`
	DueDate       *int64                         `json:"dueDate"`
	Currency      *string                        `json:"currency"`
	CustomerNotes *string                        `json:"customerNotes"`
	SubTotal      *int64                         `json:"subTotal"`
	TaxTotal      *int64                         `json:"taxTotal"`
	Total         *int64                         `json:"total"`
	LineItems     []CreateInvoiceLineItemRequest `json:"lineItems"`
}
