package router

import (
	"lunchly_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupCustomerRoutes sets up the customer routes.
func SetupCustomerRoutes(apiGroup *gin.RouterGroup, customerHandler *handlers.CustomerHandler, reservationHandler *handlers.ReservationHandler) {
	customerRoutes := apiGroup.Group("/customers")
	{
		customerRoutes.GET("", customerHandler.GetCustomers)
		customerRoutes.POST("", customerHandler.CreateCustomer)
		customerRoutes.GET("/best", customerHandler.GetBestCustomers)
		customerRoutes.GET("/:id", customerHandler.GetCustomerByID)
		customerRoutes.PUT("/:id", customerHandler.UpdateCustomer)
		customerRoutes.POST("/:id/reservations", reservationHandler.CreateReservation)
	}
}

// SetupReservationRoutes sets up the reservation routes.
func SetupReservationRoutes(apiGroup *gin.RouterGroup, reservationHandler *handlers.ReservationHandler) {
	reservationRoutes := apiGroup.Group("/reservations")
	{
		reservationRoutes.GET("/:id", reservationHandler.GetReservationByID)
		reservationRoutes.PUT("/:id", reservationHandler.UpdateReservation)
	}
}
