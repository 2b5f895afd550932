package controllers

import (
	"net/http"

	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminController 管理画面のダッシュボードに関するコントローラー
type AdminController struct {
	statsService services.StatsService
}

// NewAdminController AdminControllerを作成
func NewAdminController(statsService services.StatsService) *AdminController {
	return &AdminController{
		statsService: statsService,
	}
}

// GetStats 作品とリードの集計値を取得
func (c *AdminController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetAdminStats()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
