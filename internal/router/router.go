package router

import (
	"database/sql"

	"lunchly_backend/internal/handlers"
	"lunchly_backend/internal/repositories"
	"lunchly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application. The database pool
// is injected here and threaded through repositories and services.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	customerRepo := repositories.NewCustomerRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)

	// Initialize Services
	customerService := services.NewCustomerService(customerRepo, reservationRepo, db)
	reservationService := services.NewReservationService(reservationRepo, customerRepo, db)

	// Initialize Handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	apiV1 := engine.Group("/api/v1")
	{
		SetupCustomerRoutes(apiV1, customerHandler, reservationHandler)
		SetupReservationRoutes(apiV1, reservationHandler)
	}
}
