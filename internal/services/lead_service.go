package services

import (
	"errors"
	"net/mail"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/repository"

	"gorm.io/gorm"
)

// CreateLeadInput リード作成の入力
type CreateLeadInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// ListLeadsParams リード一覧の取得条件
type ListLeadsParams struct {
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	Limit     int
}

// LeadListResult ページングされたリード一覧
type LeadListResult struct {
	Data       []models.Lead `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// LeadService リードに関するサービスインターフェース
type LeadService interface {
	Create(input CreateLeadInput) (*models.Lead, error)
	List(params ListLeadsParams) (*LeadListResult, error)
	Delete(id string) error
}

// leadService LeadServiceの実装
type leadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService LeadServiceを作成
func NewLeadService(leadRepo repository.LeadRepository) LeadService {
	return &leadService{leadRepo: leadRepo}
}

// Create お問い合わせフォームからのリードを作成
func (s *leadService) Create(input CreateLeadInput) (*models.Lead, error) {
	if input.Name == "" {
		return nil, NewValidationError("名前は必須です")
	}
	if input.Message == "" {
		return nil, NewValidationError("メッセージは必須です")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, NewValidationError("メールアドレスの形式が正しくありません")
	}

	lead := &models.Lead{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}

	if err := s.leadRepo.Create(lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// List リード一覧を取得
func (s *leadService) List(params ListLeadsParams) (*LeadListResult, error) {
	normalizePaging(&params.Page, &params.Limit)

	leads, total, err := s.leadRepo.List(repository.LeadListParams{
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
		Page:      params.Page,
		Limit:     params.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &LeadListResult{
		Data:       leads,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages(total, params.Limit),
	}, nil
}

// Delete リードを削除
func (s *leadService) Delete(id string) error {
	if err := s.leadRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLeadNotFound
		}
		return err
	}
	return nil
}
