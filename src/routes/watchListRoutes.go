package routes

import (
	"github.com/chillgamer/chill-gamer-server/src/controllers"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
)

func SetupWatchListRoutes(router *gin.Engine, service *services.WatchListService) {
	watchListController := controllers.NewWatchListController(service)

	watchList := router.Group("/watchList")
	{
		watchList.POST("", watchListController.AddWatchListItem)
		watchList.GET("", watchListController.GetWatchList)
		watchList.GET("/email/:email", watchListController.GetByOwnerEmail)
		watchList.GET("/:id", watchListController.GetWatchListItem)
		watchList.DELETE("/:id", watchListController.DeleteWatchListItem)
	}
}
