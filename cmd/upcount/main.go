package main

import (
	"github.com/madisvain/upcount/internal/backup"
	"github.com/madisvain/upcount/internal/client"
	clientdomain "github.com/madisvain/upcount/internal/client/domain"
	"github.com/madisvain/upcount/internal/config"
	"github.com/madisvain/upcount/internal/db"
	"github.com/madisvain/upcount/internal/id"
	"github.com/madisvain/upcount/internal/invoice"
	invoicedomain "github.com/madisvain/upcount/internal/invoice/domain"
	"github.com/madisvain/upcount/internal/logger"
	"github.com/madisvain/upcount/internal/migration"
	"github.com/madisvain/upcount/internal/organization"
	organizationdomain "github.com/madisvain/upcount/internal/organization/domain"
	"github.com/madisvain/upcount/internal/project"
	projectdomain "github.com/madisvain/upcount/internal/project/domain"
	"github.com/madisvain/upcount/internal/tag"
	tagdomain "github.com/madisvain/upcount/internal/tag/domain"
	"github.com/madisvain/upcount/internal/taxrate"
	taxratedomain "github.com/madisvain/upcount/internal/taxrate/domain"
	"github.com/madisvain/upcount/internal/timeentry"
	timeentrydomain "github.com/madisvain/upcount/internal/timeentry/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		logger.Module,
		db.Module,
		migration.Module,
		id.Module,

		// Entity repositories
		organization.Module,
		client.Module,
		project.Module,
		invoice.Module,
		taxrate.Module,
		tag.Module,
		timeentry.Module,

		// Operator procedures
		backup.Module,

		fx.Invoke(ready),
	)
	app.Run()
}

// repositories forces construction of the full repository surface the host
// shell dispatches to.
type repositories struct {
	fx.In

	Organizations organizationdomain.Repository
	Clients       clientdomain.Repository
	Projects      projectdomain.Repository
	Invoices      invoicedomain.Repository
	TaxRates      taxratedomain.Repository
	Tags          tagdomain.Repository
	TimeEntries   timeentrydomain.Repository
	Backup        *backup.Service
}

func ready(log *zap.Logger, _ repositories) {
	log.Info("persistence core ready")
}
