package routes

import (
	"github.com/chillgamer/chill-gamer-server/src/controllers"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
)

func SetupGameReviewRoutes(router *gin.Engine, service *services.GameReviewService) {
	gameReviewController := controllers.NewGameReviewController(service)

	reviews := router.Group("/gameReviews")
	{
		reviews.POST("", gameReviewController.CreateGameReview)
		reviews.GET("", gameReviewController.GetGameReviews)
		reviews.GET("/top-rated", gameReviewController.GetTopRated)
		reviews.GET("/filter/:filterGenre", gameReviewController.FilterByGenre)
		reviews.GET("/sorted/:sortBy", gameReviewController.GetSorted)
		reviews.GET("/filter&sort/:genre", gameReviewController.FilterAndSort)
		reviews.GET("/email/:email", gameReviewController.GetByUserEmail)
		reviews.GET("/:id", gameReviewController.GetGameReview)
		reviews.PUT("/:id", gameReviewController.UpdateGameReview)
		reviews.DELETE("/:id", gameReviewController.DeleteGameReview)
	}
}
