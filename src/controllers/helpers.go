package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/chillgamer/chill-gamer-server/src/services"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// bindDocument reads the request body as relaxed Extended JSON so that
// integers keep an integer type once stored.
func bindDocument(ctx *gin.Context) (bson.M, error) {
	raw, err := ctx.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("request body must be a JSON object")
	}

	var doc bson.M
	if err := bson.UnmarshalExtJSON(raw, false, &doc); err != nil {
		return nil, fmt.Errorf("request body must be a JSON object: %w", err)
	}
	return doc, nil
}

func badRequest(ctx *gin.Context, err error) {
	logger.Warn(logger.EventValidationFailure, "Rejected request", logger.Fields(
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"error", err.Error(),
	))
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respondError maps service errors onto a status code. A malformed id is the
// caller's fault; anything else came from the database.
func respondError(ctx *gin.Context, err error) {
	if errors.Is(err, services.ErrInvalidID) {
		badRequest(ctx, err)
		return
	}

	logger.Error(logger.EventDBError, "Database operation failed", logger.Fields(
		"method", ctx.Request.Method,
		"path", ctx.Request.URL.Path,
		"error", err.Error(),
	))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
