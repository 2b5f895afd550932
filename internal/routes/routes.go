package routes

import (
	"log"

	"github.com/studiofolio/portfolio_backend/internal/config"
	"github.com/studiofolio/portfolio_backend/internal/controllers"
	"github.com/studiofolio/portfolio_backend/internal/middlewares"
	"github.com/studiofolio/portfolio_backend/internal/repository"
	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter ルーターを設定
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware(cfg.Server.FrontendURL))

	// リポジトリを作成
	userRepo := repository.NewUserRepository(db)
	workRepo := repository.NewWorkRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	// ストレージサービスを作成
	uploadService, err := services.NewUploadService(cfg)
	if err != nil {
		log.Fatalf("ストレージサービスの初期化に失敗しました: %v", err)
	}

	// サービスを作成
	authService := services.NewAuthService(userRepo, cfg)
	workService := services.NewWorkService(workRepo)
	leadService := services.NewLeadService(leadRepo)
	statsService := services.NewStatsService(workRepo, leadRepo)

	// コントローラーを作成
	authController := controllers.NewAuthController(authService)
	workController := controllers.NewWorkController(workService)
	adminWorkController := controllers.NewAdminWorkController(workService)
	leadController := controllers.NewLeadController(leadService)
	adminController := controllers.NewAdminController(statsService)
	uploadController := controllers.NewUploadController(uploadService, cfg)
	healthController := controllers.NewHealthController()

	// 認証ミドルウェア
	authMiddleware := middlewares.AuthMiddleware(authService)

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート（認証不要）
		api.GET("/health", healthController.Check)

		// 認証ルート
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.GET("/me", authMiddleware, authController.GetMe)
		}

		// 公開作品ルート（PUBLISHEDのみ）
		works := api.Group("/works")
		{
			works.GET("", workController.List)
			works.GET("/:slug", workController.GetBySlug)
		}

		// お問い合わせルート
		api.POST("/leads", leadController.Create)

		// 管理者ルート（認証が必要）
		admin := api.Group("/admin", authMiddleware)
		{
			admin.GET("/stats", adminController.GetStats)

			adminWorks := admin.Group("/works")
			{
				adminWorks.GET("", adminWorkController.List)
				adminWorks.GET("/:id", adminWorkController.GetByID)
				adminWorks.POST("", adminWorkController.Create)
				adminWorks.PUT("/:id", adminWorkController.Update)
				adminWorks.DELETE("/:id", adminWorkController.Delete)
			}

			adminLeads := admin.Group("/leads")
			{
				adminLeads.GET("", leadController.List)
				adminLeads.DELETE("/:id", leadController.Delete)
			}

			admin.POST("/uploads", uploadController.Upload)
		}
	}

	return r
}
