package controllers

import (
	"net/http"
	"strconv"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// AdminWorkController 管理画面の作品CRUDに関するコントローラー
type AdminWorkController struct {
	workService services.WorkService
}

// NewAdminWorkController AdminWorkControllerを作成
func NewAdminWorkController(workService services.WorkService) *AdminWorkController {
	return &AdminWorkController{
		workService: workService,
	}
}

// imageRequest ギャラリー画像のリクエスト。IDがあれば既存画像の更新。
type imageRequest struct {
	ID    string `json:"id"`
	URL   string `json:"url" binding:"required,url"`
	Order *int   `json:"order"`
}

// createWorkRequest 作品作成のリクエストボディ
type createWorkRequest struct {
	Title         string         `json:"title" binding:"required"`
	Slug          string         `json:"slug"`
	Category      string         `json:"category" binding:"required"`
	Type          string         `json:"type" binding:"required"`
	Year          int            `json:"year" binding:"required"`
	Client        string         `json:"client"`
	Description   string         `json:"description" binding:"required"`
	Tags          []string       `json:"tags"`
	Featured      bool           `json:"featured"`
	Status        string         `json:"status"`
	CoverImageURL string         `json:"coverImageUrl" binding:"required,url"`
	ExternalURL   string         `json:"externalUrl" binding:"omitempty,url"`
	Images        []imageRequest `json:"images"`
}

// updateWorkRequest 作品更新のリクエストボディ。nilのフィールドは変更しない。
type updateWorkRequest struct {
	Title         *string        `json:"title"`
	Slug          *string        `json:"slug"`
	Category      *string        `json:"category"`
	Type          *string        `json:"type"`
	Year          *int           `json:"year"`
	Client        *string        `json:"client"`
	Description   *string        `json:"description"`
	Tags          []string       `json:"tags"`
	Featured      *bool          `json:"featured"`
	Status        *string        `json:"status"`
	CoverImageURL *string        `json:"coverImageUrl" binding:"omitempty,url"`
	ExternalURL   *string        `json:"externalUrl" binding:"omitempty,url"`
	Images        []imageRequest `json:"images"`
}

// toImageInputs リクエストの画像リストをサービス層の入力に変換
func toImageInputs(images []imageRequest) []services.ImageInput {
	if images == nil {
		return nil
	}
	inputs := make([]services.ImageInput, 0, len(images))
	for _, img := range images {
		inputs = append(inputs, services.ImageInput{
			ID:    img.ID,
			URL:   img.URL,
			Order: img.Order,
		})
	}
	return inputs
}

// List 作品一覧を取得（DRAFTも含む）
func (c *AdminWorkController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	result, err := c.workService.List(services.ListWorksParams{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		Type:     ctx.Query("type"),
		Status:   ctx.Query("status"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// GetByID IDで作品を取得
func (c *AdminWorkController) GetByID(ctx *gin.Context) {
	work, err := c.workService.GetByID(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, work)
}

// Create 新しい作品を作成
func (c *AdminWorkController) Create(ctx *gin.Context) {
	var req createWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	work, err := c.workService.Create(services.CreateWorkInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Category:      models.WorkCategory(req.Category),
		Type:          models.WorkType(req.Type),
		Year:          req.Year,
		Client:        req.Client,
		Description:   req.Description,
		Tags:          req.Tags,
		Featured:      req.Featured,
		Status:        models.WorkStatus(req.Status),
		CoverImageURL: req.CoverImageURL,
		ExternalURL:   req.ExternalURL,
		Images:        toImageInputs(req.Images),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, work)
}

// Update 作品を更新
func (c *AdminWorkController) Update(ctx *gin.Context) {
	var req updateWorkRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "リクエストの形式が正しくありません: " + err.Error()})
		return
	}

	input := services.UpdateWorkInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Year:          req.Year,
		Client:        req.Client,
		Description:   req.Description,
		Tags:          req.Tags,
		Featured:      req.Featured,
		CoverImageURL: req.CoverImageURL,
		ExternalURL:   req.ExternalURL,
		Images:        toImageInputs(req.Images),
	}
	if req.Category != nil {
		category := models.WorkCategory(*req.Category)
		input.Category = &category
	}
	if req.Type != nil {
		workType := models.WorkType(*req.Type)
		input.Type = &workType
	}
	if req.Status != nil {
		status := models.WorkStatus(*req.Status)
		input.Status = &status
	}

	work, err := c.workService.Update(ctx.Param("id"), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, work)
}

// Delete 作品を削除
func (c *AdminWorkController) Delete(ctx *gin.Context) {
	if err := c.workService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
