package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"autoinsight/yardhub/internal/config"
	"autoinsight/yardhub/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	yardHandler *YardHandler,
	inviteHandler *InviteHandler,
	employeeHandler *EmployeeHandler,
	vehicleHandler *VehicleHandler,
	yardVehicleHandler *YardVehicleHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		yards := api.Group("/yards")
		{
			yards.POST("", yardHandler.Create)
			yards.GET("", yardHandler.List)
			yards.GET("/:yardId", yardHandler.Get)
			yards.PATCH("/:yardId", yardHandler.Update)
			yards.DELETE("/:yardId", yardHandler.Delete)

			yards.POST("/:yardId/invites", inviteHandler.Create)
			yards.GET("/:yardId/invites", inviteHandler.ListByYard)

			yards.GET("/:yardId/employees", employeeHandler.ListByYard)
			yards.GET("/:yardId/employees/:employeeId", employeeHandler.Get)
			yards.PATCH("/:yardId/employees/:employeeId", employeeHandler.Update)
			yards.DELETE("/:yardId/employees/:employeeId", employeeHandler.Delete)

			yards.POST("/:yardId/vehicles", yardVehicleHandler.Create)
			yards.GET("/:yardId/vehicles", yardVehicleHandler.ListByYard)
			yards.GET("/:yardId/vehicles/:yardVehicleId", yardVehicleHandler.Get)
			yards.PATCH("/:yardId/vehicles/:yardVehicleId", yardVehicleHandler.Update)
		}

		// Invite acceptance happens by token, outside any yard scope, because
		// the invitee is not a yard member yet.
		invites := api.Group("/invites")
		{
			invites.POST("/:token/accept", inviteHandler.Accept)
			invites.POST("/:token/reject", inviteHandler.Reject)
			invites.GET("/user/:userId", inviteHandler.ListAcceptedByUser)
			invites.GET("/email/:email", inviteHandler.ListPendingByEmail)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.POST("", vehicleHandler.Create)
			vehicles.GET("", vehicleHandler.GetByQRCode)
			vehicles.GET("/:vehicleId", vehicleHandler.Get)
		}

		qrcodes := api.Group("/qrcodes")
		{
			qrcodes.POST("", vehicleHandler.CreateQRCode)
			qrcodes.GET("/:qrCodeId", vehicleHandler.GetQRCode)
			qrcodes.GET("/:qrCodeId/image", vehicleHandler.RenderQRCode)
		}
	}

	return r
}
