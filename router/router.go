package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/reservation-app/controllers"
	"github.com/yeremiapane/reservation-app/middlewares"
	"github.com/yeremiapane/reservation-app/services"
	"github.com/yeremiapane/reservation-app/store"
)

func SetupRouter(st *store.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	tableSvc := services.NewTableService(st)
	reservationSvc := services.NewReservationService(st)
	listingSvc := services.NewListingService(st)

	tableCtrl := controllers.NewTableController(tableSvc, listingSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.GET("/tables", tableCtrl.GetAllTables)

		api.POST("/reservations", reservationCtrl.CreateReservation)
		api.DELETE("/reservations", reservationCtrl.ClearReservations)
		api.PUT("/reservations/:reservation_id", reservationCtrl.UpdateReservation)
		api.DELETE("/reservations/:reservation_id", reservationCtrl.CancelReservation)
		api.POST("/reservations/:reservation_id/arrive", reservationCtrl.MarkArrived)

		admin := api.Group("/admin")
		{
			admin.POST("/tables", tableCtrl.CreateTable)
			admin.GET("/tables/:table_id", tableCtrl.GetTableByID)
			admin.PUT("/tables/:table_id", tableCtrl.UpdateTable)
			admin.DELETE("/tables/:table_id", tableCtrl.DeleteTable)
		}
	}

	return r
}
