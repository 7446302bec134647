package routes

import (
	"github.com/chillgamer/chill-gamer-server/src/controllers"
	"github.com/gin-gonic/gin"
)

func SetupHealthRoutes(router *gin.Engine, db controllers.Pinger) {
	healthController := controllers.NewHealthController(db)

	router.GET("/", healthController.Liveness)
	router.GET("/health", healthController.Readiness)
}
