package repository

import (
	"errors"

	"github.com/studiofolio/portfolio_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WorkListParams 作品一覧のクエリ条件
type WorkListParams struct {
	Search   string // タイトルまたはタグの部分一致（大文字小文字を区別しない）
	Category string
	Type     string
	Status   string
	Page     int
	Limit    int
}

// WorkRepository 作品に関するデータベース操作を行うインターフェース
type WorkRepository interface {
	Create(work *models.Work) error
	FindByID(id string) (*models.Work, error)
	FindBySlug(slug string) (*models.Work, error)
	SlugExists(slug string, excludeID string) (bool, error)
	UpdateWithImages(work *models.Work, deleteImageIDs []string, updateImages, createImages []models.WorkImage) error
	Delete(id string) error
	List(params WorkListParams) ([]models.Work, int64, error)
	Count() (int64, error)
	CountByStatus(status models.WorkStatus) (int64, error)
}

// workRepository WorkRepositoryの実装
type workRepository struct {
	db *gorm.DB
}

// NewWorkRepository WorkRepositoryを作成
func NewWorkRepository(db *gorm.DB) WorkRepository {
	return &workRepository{db: db}
}

// preloadImages ギャラリー画像を表示順で読み込む
func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Preload("Images", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("display_order ASC")
	})
}

// Create 新しい作品をギャラリー画像ごと作成
func (r *workRepository) Create(work *models.Work) error {
	return r.db.Create(work).Error
}

// FindByID IDで作品を検索
func (r *workRepository) FindByID(id string) (*models.Work, error) {
	var work models.Work
	if err := preloadImages(r.db).First(&work, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

// FindBySlug スラッグで作品を検索
func (r *workRepository) FindBySlug(slug string) (*models.Work, error) {
	var work models.Work
	if err := preloadImages(r.db).First(&work, "slug = ?", slug).Error; err != nil {
		return nil, err
	}
	return &work, nil
}

// SlugExists 指定したスラッグが他の作品で使われているかを確認
func (r *workRepository) SlugExists(slug string, excludeID string) (bool, error) {
	var count int64
	query := r.db.Model(&models.Work{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateWithImages 作品本体の更新とギャラリー画像の削除・更新・追加を
// 1つのトランザクションで実行する。画像の削除を先に行い、その後に
// 本体の更新と画像のアップサートを適用する。
func (r *workRepository) UpdateWithImages(work *models.Work, deleteImageIDs []string, updateImages, createImages []models.WorkImage) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if len(deleteImageIDs) > 0 {
			if err := tx.Where("work_id = ? AND id IN ?", work.ID, deleteImageIDs).
				Delete(&models.WorkImage{}).Error; err != nil {
				return err
			}
		}

		// 関連の自動保存を避けるため本体のみ保存する
		if err := tx.Omit("Images").Save(work).Error; err != nil {
			return err
		}

		// IDつきの画像はアップサート（存在すれば更新、なければ作成）
		for i := range updateImages {
			updateImages[i].WorkID = work.ID
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"url", "display_order"}),
			}).Create(&updateImages[i]).Error; err != nil {
				return err
			}
		}

		for i := range createImages {
			createImages[i].WorkID = work.ID
			if err := tx.Create(&createImages[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete 作品とそのギャラリー画像を削除
func (r *workRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_id = ?", id).Delete(&models.WorkImage{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Work{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// List 作品一覧を取得。検索・カテゴリー・タイプ・公開状態で絞り込み、
// 作成日時の降順でページングする。
func (r *workRepository) List(params WorkListParams) ([]models.Work, int64, error) {
	var works []models.Work
	var total int64

	offset := (params.Page - 1) * params.Limit

	query := r.db.Model(&models.Work{})

	// 検索条件を適用（タイトルまたはシリアライズ済みタグの部分一致）
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("title LIKE ? OR tags LIKE ?", like, like)
	}

	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}

	// 合計数を取得
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// データを取得
	if err := preloadImages(query).
		Order("created_at DESC").
		Offset(offset).
		Limit(params.Limit).
		Find(&works).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return works, total, nil
}

// Count 作品の総数を取得
func (r *workRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Work{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByStatus 公開状態ごとの作品数を取得
func (r *workRepository) CountByStatus(status models.WorkStatus) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Work{}).Where("status = ?", status).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
