package services

import (
	"fmt"
	"mime/multipart"

	"github.com/studiofolio/portfolio_backend/internal/config"
)

// UploadService 画像ファイルをオブジェクトストレージにアップロードするサービス。
// このアプリはファイルの中身を解釈せず、ホスティング先のURLだけを扱う。
type UploadService interface {
	UploadImage(file multipart.File, fileName string) (string, error)
}

// NewUploadService 設定に応じたストレージプロバイダーを作成
func NewUploadService(cfg *config.Config) (UploadService, error) {
	switch cfg.Storage.Provider {
	case "cloudinary":
		return newCloudinaryUploadService(cfg)
	case "s3":
		return newS3UploadService(cfg)
	default:
		return nil, fmt.Errorf("不明なストレージプロバイダーです: %s", cfg.Storage.Provider)
	}
}
