package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/studiofolio/portfolio_backend/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// cloudinaryUploadService Cloudinaryへのアップロード実装
type cloudinaryUploadService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// newCloudinaryUploadService CloudinaryのUploadServiceを作成
func newCloudinaryUploadService(cfg *config.Config) (UploadService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryUploadService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadImage 画像をCloudinaryにアップロードして公開URLを返す
func (s *cloudinaryUploadService) UploadImage(file multipart.File, fileName string) (string, error) {
	// ファイルデータを読み込み
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", fmt.Errorf("ファイルの読み込みに失敗しました: %v", err)
	}

	uploadParams := uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     fileName,
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploadParams)
	if err != nil {
		return "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %v", err)
	}

	return result.SecureURL, nil
}
