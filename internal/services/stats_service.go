package services

import (
	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/repository"
)

// AdminStats 管理画面のダッシュボードに表示する集計値
type AdminStats struct {
	TotalWorks     int64 `json:"totalWorks"`
	PublishedWorks int64 `json:"publishedWorks"`
	DraftWorks     int64 `json:"draftWorks"`
	TotalLeads     int64 `json:"totalLeads"`
}

// StatsService 集計に関するサービスインターフェース
type StatsService interface {
	GetAdminStats() (*AdminStats, error)
}

// statsService StatsServiceの実装
type statsService struct {
	workRepo repository.WorkRepository
	leadRepo repository.LeadRepository
}

// NewStatsService StatsServiceを作成
func NewStatsService(workRepo repository.WorkRepository, leadRepo repository.LeadRepository) StatsService {
	return &statsService{
		workRepo: workRepo,
		leadRepo: leadRepo,
	}
}

// GetAdminStats 作品とリードの集計値を取得
func (s *statsService) GetAdminStats() (*AdminStats, error) {
	totalWorks, err := s.workRepo.Count()
	if err != nil {
		return nil, err
	}

	publishedWorks, err := s.workRepo.CountByStatus(models.StatusPublished)
	if err != nil {
		return nil, err
	}

	draftWorks, err := s.workRepo.CountByStatus(models.StatusDraft)
	if err != nil {
		return nil, err
	}

	totalLeads, err := s.leadRepo.Count()
	if err != nil {
		return nil, err
	}

	return &AdminStats{
		TotalWorks:     totalWorks,
		PublishedWorks: publishedWorks,
		DraftWorks:     draftWorks,
		TotalLeads:     totalLeads,
	}, nil
}
