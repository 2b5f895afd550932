package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError サービス層のエラーをHTTPレスポンスに対応づける。
// 想定外のエラーはログに残し、呼び出し側には一般的なメッセージだけを返す。
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrWorkNotFound), errors.Is(err, services.ErrLeadNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrSlugConflict), services.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("サーバーエラー: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "サーバーエラーが発生しました"})
	}
}
