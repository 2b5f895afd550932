package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/config"
	"github.com/studiofolio/portfolio_backend/internal/services"
	"github.com/studiofolio/portfolio_backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadFiles 一度にアップロードできる画像の上限
const maxUploadFiles = 10

// UploadController 画像アップロードに関するコントローラー（管理者用）
type UploadController struct {
	uploadService services.UploadService
	cfg           *config.Config
}

// NewUploadController UploadControllerを作成
func NewUploadController(uploadService services.UploadService, cfg *config.Config) *UploadController {
	return &UploadController{
		uploadService: uploadService,
		cfg:           cfg,
	}
}

// Upload 複数の画像をオブジェクトストレージにアップロードしてURLを返す
func (c *UploadController) Upload(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "マルチパートフォームの解析に失敗しました"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "画像ファイルが必要です"})
		return
	}
	if len(files) > maxUploadFiles {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("一度にアップロードできるのは%d件までです", maxUploadFiles)})
		return
	}

	urls := make([]string, 0, len(files))
	for _, fileHeader := range files {
		if !utils.IsAllowedExtension(fileHeader.Filename, c.cfg.Storage.AllowedTypes) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("許可されていないファイル形式です: %s", fileHeader.Filename)})
			return
		}
		if fileHeader.Size > c.cfg.Storage.MaxUploadSize {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("ファイルサイズが大きすぎます (最大 %d MB)", c.cfg.Storage.MaxUploadSize/1024/1024)})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "ファイルを開けませんでした"})
			return
		}

		fileName := fmt.Sprintf("%d_%s", time.Now().Unix(), utils.GenerateRandomString(8))
		url, err := c.uploadService.UploadImage(file, fileName)
		file.Close()
		if err != nil {
			respondError(ctx, err)
			return
		}

		urls = append(urls, url)
	}

	ctx.JSON(http.StatusOK, gin.H{"urls": urls})
}
