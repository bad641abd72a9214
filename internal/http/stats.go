package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/services"
)

const MsgStatsFailed = "Error retrieving statistics"

type StatsController struct {
	stats  *services.StatsService
	logger *zap.Logger
}

func NewStatsController(stats *services.StatsService, logger *zap.Logger) *StatsController {
	return &StatsController{stats: stats, logger: logger}
}

// All handles GET /stats/all.
func (sc *StatsController) All(c *gin.Context) {
	stats, err := sc.stats.Get(c.Request.Context())
	if err != nil {
		respondError(c, sc.logger, err, MsgStatsFailed)
		return
	}
	respondOK(c, "", stats)
}
