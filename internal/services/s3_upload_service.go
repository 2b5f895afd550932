package services

import (
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/studiofolio/portfolio_backend/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// s3UploadService Amazon S3へのアップロード実装
type s3UploadService struct {
	svc    *s3.S3
	bucket string
	cfg    *config.Config
}

// newS3UploadService S3のUploadServiceを作成
func newS3UploadService(cfg *config.Config) (UploadService, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.S3.Region),
	}
	if cfg.S3.AccessKeyID != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	return &s3UploadService{
		svc:    s3.New(sess),
		bucket: cfg.S3.Bucket,
		cfg:    cfg,
	}, nil
}

// UploadImage 画像をS3にアップロードして公開URLを返す
func (s *s3UploadService) UploadImage(file multipart.File, fileName string) (string, error) {
	key := "images/" + fileName

	_, err := s.svc.PutObject(&s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   aws.ReadSeekCloser(file),
	})
	if err != nil {
		return "", fmt.Errorf("S3へのアップロードに失敗しました: %v", err)
	}

	// CloudFrontなどのベースURLが設定されていればそちらを使う
	if s.cfg.S3.BaseURL != "" {
		return strings.TrimSuffix(s.cfg.S3.BaseURL, "/") + "/" + key, nil
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.cfg.S3.Region, key), nil
}
