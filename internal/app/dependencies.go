package app

import (
	"math/rand"
	"time"

	"github.com/balanco/balanco/internal/config"
	"github.com/balanco/balanco/internal/event_bus"
	"github.com/balanco/balanco/internal/utils"
	"github.com/balanco/balanco/pkg/changeset"
	"github.com/balanco/balanco/pkg/cost_of_living"
	"github.com/balanco/balanco/pkg/debt_mapping"
	"github.com/balanco/balanco/pkg/diagnostic"
	"github.com/balanco/balanco/pkg/google"
	"github.com/balanco/balanco/pkg/insight"
	"github.com/balanco/balanco/pkg/prefill"
	"github.com/balanco/balanco/pkg/report"
	"github.com/balanco/balanco/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	UserService user.Service
	UserHandler *user.Handler

	GoogleAuth    *google.GoogleAuth
	GoogleService google.Service
	GoogleHandler *google.Handler

	DiagnosticRepo    diagnostic.Repository
	DiagnosticService diagnostic.Service
	DiagnosticHandler *diagnostic.Handler

	ChangesetService *changeset.ServiceImpl
	ChangesetHandler *changeset.Handler

	CostOfLivingRepo    cost_of_living.Repository
	CostOfLivingService *cost_of_living.ServiceImpl
	CostOfLivingHandler *cost_of_living.Handler

	DebtMappingRepo    debt_mapping.Repository
	DebtMappingService *debt_mapping.ServiceImpl
	DebtMappingHandler *debt_mapping.Handler

	PrefillService *prefill.ServiceImpl
	PrefillHandler *prefill.Handler

	ReportService     *report.ServiceImpl
	CsvReportRenderer *report.CsvReportRendererImpl
	ReportHandler     *report.Handler

	RotationStore  insight.RotationStore
	InsightService insight.Service
	InsightHandler *insight.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.GoogleAuth = google.NewGoogleAuth(db, deps.UserService, cfg)
	deps.GoogleService = google.NewService(deps.GoogleAuth)
	deps.GoogleHandler = google.NewHandler(deps.GoogleService)

	deps.DiagnosticRepo = diagnostic.NewRepository(db)
	deps.DiagnosticService = diagnostic.NewService(deps.DiagnosticRepo, deps.EventBus, deps.Clock)
	deps.DiagnosticHandler = diagnostic.NewHandler(deps.DiagnosticService)

	deps.ChangesetService = changeset.NewService(deps.DiagnosticService)
	deps.ChangesetHandler = changeset.NewHandler(deps.ChangesetService)

	deps.CostOfLivingRepo = cost_of_living.NewRepository(db)
	deps.CostOfLivingService = cost_of_living.NewService(deps.CostOfLivingRepo)
	deps.CostOfLivingHandler = cost_of_living.NewHandler(deps.CostOfLivingService)

	deps.DebtMappingRepo = debt_mapping.NewRepository(db)
	deps.DebtMappingService = debt_mapping.NewService(deps.DebtMappingRepo)
	deps.DebtMappingHandler = debt_mapping.NewHandler(deps.DebtMappingService)

	deps.PrefillService = prefill.NewService(deps.DiagnosticService, deps.DebtMappingService, deps.CostOfLivingService, deps.EventBus)
	deps.PrefillHandler = prefill.NewHandler(deps.PrefillService)

	deps.ReportService = report.NewService(deps.DiagnosticService)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.ReportHandler = report.NewHandler(deps.ReportService, deps.CsvReportRenderer)

	deps.RotationStore = insight.NewPostgresRotationStore(db)
	selector := insight.NewSelector(deps.RotationStore, rand.New(rand.NewSource(time.Now().UnixNano())))
	deps.InsightService = insight.NewService(deps.ReportService, deps.DiagnosticService, selector)
	deps.InsightHandler = insight.NewHandler(deps.InsightService)

	event_bus.SubscribeTyped(deps.EventBus, event_bus.DiagnosticUpdated,
		func(e event_bus.EventT[event_bus.DiagnosticUpdatedEvent]) error {
			log.Debugf("diagnostic updated for user %d at %s", e.Data.UserId, e.Data.LastUpdated)
			return nil
		})
	event_bus.SubscribeTyped(deps.EventBus, event_bus.DiagnosticPrefilled,
		func(e event_bus.EventT[event_bus.DiagnosticPrefilledEvent]) error {
			log.Infof("diagnostic prefilled for user %d (debts: %t, items: %t)",
				e.Data.UserId, e.Data.DebtsReplaced, e.Data.ItemsReplaced)
			return nil
		})

	return deps
}
