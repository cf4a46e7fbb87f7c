package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/miyabidining/table-reservation-api/internal/audit"
	"github.com/miyabidining/table-reservation-api/internal/config"
	domain "github.com/miyabidining/table-reservation-api/internal/domain/reservation"
	"github.com/miyabidining/table-reservation-api/internal/handlers"
	"github.com/miyabidining/table-reservation-api/internal/identity"
	infraRepo "github.com/miyabidining/table-reservation-api/internal/infra/repository"
	"github.com/miyabidining/table-reservation-api/internal/middleware"
	ucReservation "github.com/miyabidining/table-reservation-api/internal/usecase/reservation"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	store := infraRepo.NewReservationFileStore(cfg.StorePath)
	clock := domain.NewClock(cfg.Timezone)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	provider := identity.NewProvider(cfg.ChannelID, cfg.ChannelSecret)

	// ======================================================
	// USE CASES — RESERVATIONS
	// ======================================================
	createReservationUC := ucReservation.NewCreateReservation(
		store,
		auditDispatcher,
		clock,
	)

	listReservationsUC := ucReservation.NewListReservations(
		store,
		clock,
	)

	cancelReservationUC := ucReservation.NewCancelReservation(
		store,
		auditDispatcher,
	)

	slotOptionsUC := ucReservation.NewGetSlotOptions(clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler()

	reservationHandler := handlers.NewReservationHandler(
		createReservationUC,
		listReservationsUC,
		cancelReservationUC,
		slotOptionsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(provider))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/slots", reservationHandler.SlotOptions)

			secured.POST("/me/reservations", reservationHandler.Create)
			secured.GET("/me/reservations", reservationHandler.List)
			secured.DELETE("/me/reservations/:id", reservationHandler.Cancel)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
