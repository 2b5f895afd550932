package repository

import (
	"errors"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/models"

	"gorm.io/gorm"
)

// LeadListParams リード一覧のクエリ条件
type LeadListParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// LeadRepository リードに関するデータベース操作を行うインターフェース
type LeadRepository interface {
	Create(lead *models.Lead) error
	List(params LeadListParams) ([]models.Lead, int64, error)
	Delete(id string) error
	Count() (int64, error)
}

// leadRepository LeadRepositoryの実装
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository LeadRepositoryを作成
func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

// Create 新しいリードを作成
func (r *leadRepository) Create(lead *models.Lead) error {
	return r.db.Create(lead).Error
}

// List リード一覧を取得。期間で絞り込み、作成日時の降順でページングする。
func (r *leadRepository) List(params LeadListParams) ([]models.Lead, int64, error) {
	var leads []models.Lead
	var total int64

	offset := (params.Page - 1) * params.Limit

	query := r.db.Model(&models.Lead{})

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(params.Limit).
		Find(&leads).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, err
	}

	return leads, total, nil
}

// Delete リードを削除
func (r *leadRepository) Delete(id string) error {
	result := r.db.Delete(&models.Lead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count リードの総数を取得
func (r *leadRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&models.Lead{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
