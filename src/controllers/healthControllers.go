package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/chillgamer/chill-gamer-server/src/logger"
	"github.com/gin-gonic/gin"
)

const LivenessMessage = "Chill gamer server is working"

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	db Pinger
}

func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

func (c *HealthController) Liveness(ctx *gin.Context) {
	ctx.String(http.StatusOK, LivenessMessage)
}

// Readiness reports whether the database answers a ping within two seconds
func (c *HealthController) Readiness(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn(logger.EventDBError, "Health check ping failed", logger.Fields("error", err.Error()))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
