package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LeadController お問い合わせリードに関するコントローラー。
// 作成は公開エンドポイント、一覧と削除は管理者用。
type LeadController struct {
	leadService services.LeadService
}

// NewLeadController LeadControllerを作成
func NewLeadController(leadService services.LeadService) *LeadController {
	return &LeadController{
		leadService: leadService,
	}
}

// createLeadRequest リード作成のリクエストボディ
type createLeadRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" binding:"required"`
}

// Create お問い合わせフォームからリードを作成
func (c *LeadController) Create(ctx *gin.Context) {
	var req createLeadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	lead, err := c.leadService.Create(services.CreateLeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "お問い合わせを受け付けました", "lead": lead})
}

// List リード一覧を取得（管理者用）
func (c *LeadController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	params := services.ListLeadsParams{
		Page:  page,
		Limit: limit,
	}

	if start, ok := parseDate(ctx.Query("startDate")); ok {
		params.StartDate = &start
	}
	if end, ok := parseDate(ctx.Query("endDate")); ok {
		params.EndDate = &end
	}

	result, err := c.leadService.List(params)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// Delete リードを削除（管理者用）
func (c *LeadController) Delete(ctx *gin.Context) {
	if err := c.leadService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseDate クエリパラメータの日付を解析。RFC3339と日付のみの両方を受け付ける。
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}
