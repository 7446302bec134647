package controllers

import (
	"net/http"

	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
)

type GameReviewController struct {
	service *services.GameReviewService
}

func NewGameReviewController(service *services.GameReviewService) *GameReviewController {
	return &GameReviewController{service: service}
}

// CreateGameReview handles POST requests to store a new review
func (c *GameReviewController) CreateGameReview(ctx *gin.Context) {
	review, err := bindDocument(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := c.service.CreateGameReview(ctx.Request.Context(), review)
	if err != nil {
		respondError(ctx, err)
		return
	}

	logger.Info(logger.EventGeneral, "Game review created", logger.Fields("id", result.InsertedID))
	ctx.JSON(http.StatusOK, result)
}

// GetGameReviews handles GET requests to retrieve all reviews
func (c *GameReviewController) GetGameReviews(ctx *gin.Context) {
	reviews, err := c.service.GetAllGameReviews(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// GetTopRated handles GET requests for the highest rated reviews
func (c *GameReviewController) GetTopRated(ctx *gin.Context) {
	reviews, err := c.service.GetTopRated(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (c *GameReviewController) FilterByGenre(ctx *gin.Context) {
	reviews, err := c.service.GetByGenre(ctx.Request.Context(), ctx.Param("filterGenre"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

func (c *GameReviewController) GetSorted(ctx *gin.Context) {
	reviews, err := c.service.GetSorted(ctx.Request.Context(), ctx.Param("sortBy"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// FilterAndSort handles GET /gameReviews/filter&sort/:genre?sort=rating|year
func (c *GameReviewController) FilterAndSort(ctx *gin.Context) {
	reviews, err := c.service.GetByGenreSorted(ctx.Request.Context(), ctx.Param("genre"), ctx.Query("sort"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// GetGameReview responds with null when the review does not exist
func (c *GameReviewController) GetGameReview(ctx *gin.Context) {
	review, err := c.service.GetGameReviewByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, review)
}

func (c *GameReviewController) GetByUserEmail(ctx *gin.Context) {
	reviews, err := c.service.GetByUserEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// UpdateGameReview handles PUT requests; an unknown id creates the review
func (c *GameReviewController) UpdateGameReview(ctx *gin.Context) {
	body, err := bindDocument(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := c.service.UpdateGameReview(ctx.Request.Context(), ctx.Param("id"), body)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if result.UpsertedID != nil {
		logger.Info(logger.EventGeneral, "Game review created by update", logger.Fields("id", ctx.Param("id")))
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteGameReview handles DELETE requests; a missing review reports zero deleted
func (c *GameReviewController) DeleteGameReview(ctx *gin.Context) {
	result, err := c.service.DeleteGameReview(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
