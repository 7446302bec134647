package controllers

import (
	"net/http"

	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
)

type WatchListController struct {
	service *services.WatchListService
}

func NewWatchListController(service *services.WatchListService) *WatchListController {
	return &WatchListController{service: service}
}

// AddWatchListItem stores the request body unchanged
func (c *WatchListController) AddWatchListItem(ctx *gin.Context) {
	item, err := bindDocument(ctx)
	if err != nil {
		badRequest(ctx, err)
		return
	}

	result, err := c.service.AddWatchListItem(ctx.Request.Context(), item)
	if err != nil {
		respondError(ctx, err)
		return
	}

	logger.Info(logger.EventGeneral, "Watch list item added", logger.Fields("id", result.InsertedID))
	ctx.JSON(http.StatusOK, result)
}

func (c *WatchListController) GetWatchList(ctx *gin.Context) {
	items, err := c.service.GetAllWatchListItems(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *WatchListController) GetWatchListItem(ctx *gin.Context) {
	item, err := c.service.GetWatchListItemByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

func (c *WatchListController) GetByOwnerEmail(ctx *gin.Context) {
	items, err := c.service.GetByOwnerEmail(ctx.Request.Context(), ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, items)
}

func (c *WatchListController) DeleteWatchListItem(ctx *gin.Context) {
	result, err := c.service.DeleteWatchListItem(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}
