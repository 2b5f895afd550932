package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/studiofolio/portfolio_backend/internal/config"
	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	if err := seedAdminUser(db, cfg); err != nil {
		log.Fatalf("管理者ユーザーの作成に失敗しました: %v", err)
	}

	if err := seedSampleWorks(db); err != nil {
		log.Fatalf("サンプル作品の作成に失敗しました: %v", err)
	}

	fmt.Println("シードが完了しました")
}

// seedAdminUser 環境変数から管理者ユーザーを作成（存在すればスキップ）
func seedAdminUser(db *gorm.DB, cfg *config.Config) error {
	if cfg.Auth.AdminEmail == "" || cfg.Auth.AdminPassword == "" {
		log.Println("ADMIN_EMAIL または ADMIN_PASSWORD が設定されていないため、管理者ユーザーの作成をスキップします")
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.Auth.AdminEmail).Error
	if err == nil {
		log.Printf("管理者ユーザーは既に存在します: %s", cfg.Auth.AdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &models.User{
		Email:    cfg.Auth.AdminEmail,
		Password: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		return err
	}

	log.Printf("管理者ユーザーを作成しました: %s", cfg.Auth.AdminEmail)
	return nil
}

// seedSampleWorks サンプル作品を作成（スラッグが既に存在すればスキップ）
func seedSampleWorks(db *gorm.DB) error {
	samples := []models.Work{
		{
			Title:         "Website Redesign for Tech Startup",
			Category:      models.CategoryWebsite,
			Type:          models.TypeDevelopment,
			Year:          2023,
			Client:        "Innovate Solutions",
			Description:   "スタートアップ企業のWebサイトを全面リニューアル。モダンなUI/UXとパフォーマンス改善に注力した。",
			Tags:          models.StringList{"React", "Tailwind CSS", "UI/UX", "Web Development"},
			Featured:      true,
			Status:        models.StatusPublished,
			CoverImageURL: "https://example.com/images/placeholder-work1.jpg",
			ExternalURL:   "https://example.com/tech-startup",
			Images: []models.WorkImage{
				{URL: "https://example.com/images/placeholder-work1.jpg", Order: 0},
				{URL: "https://example.com/images/placeholder-work2.jpg", Order: 1},
			},
		},
		{
			Title:         "Branding for Coffee Shop",
			Category:      models.CategoryBranding,
			Type:          models.TypeDesign,
			Year:          2022,
			Client:        "The Daily Grind",
			Description:   "地元のコーヒーショップのブランドアイデンティティを構築。ロゴ、カラーパレット、販促物を制作した。",
			Tags:          models.StringList{"Branding", "Logo Design", "Graphic Design"},
			Featured:      false,
			Status:        models.StatusPublished,
			CoverImageURL: "https://example.com/images/placeholder-work2.jpg",
			Images: []models.WorkImage{
				{URL: "https://example.com/images/placeholder-work2.jpg", Order: 0},
			},
		},
	}

	for i := range samples {
		samples[i].Slug = utils.GenerateSlug(samples[i].Title)

		var count int64
		if err := db.Model(&models.Work{}).Where("slug = ?", samples[i].Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("作品は既に存在します: %s", samples[i].Slug)
			continue
		}

		if err := db.Create(&samples[i]).Error; err != nil {
			return err
		}
		log.Printf("作品を作成しました: %s", samples[i].Title)
	}

	return nil
}
