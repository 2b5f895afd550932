package controllers

import (
	"net/http"
	"strconv"

	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// WorkController 公開側の作品に関するコントローラー
type WorkController struct {
	workService services.WorkService
}

// NewWorkController WorkControllerを作成
func NewWorkController(workService services.WorkService) *WorkController {
	return &WorkController{
		workService: workService,
	}
}

// List 公開済みの作品一覧を取得。公開状態は常にPUBLISHEDに固定される。
func (c *WorkController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	result, err := c.workService.ListPublished(services.ListWorksParams{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		Type:     ctx.Query("type"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetBySlug スラッグで公開済みの作品を取得
func (c *WorkController) GetBySlug(ctx *gin.Context) {
	work, err := c.workService.GetPublishedBySlug(ctx.Param("slug"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, work)
}
