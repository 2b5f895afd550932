package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/repository"

	"gorm.io/gorm"
)

// fakeLeadRepo テスト用のインメモリLeadRepository実装
type fakeLeadRepo struct {
	leads []models.Lead
	seq   int
	clock time.Time
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeLeadRepo) Create(lead *models.Lead) error {
	f.seq++
	lead.ID = fmt.Sprintf("lead-%d", f.seq)
	f.clock = f.clock.Add(time.Hour)
	lead.CreatedAt = f.clock
	f.leads = append(f.leads, *lead)
	return nil
}

func (f *fakeLeadRepo) List(params repository.LeadListParams) ([]models.Lead, int64, error) {
	var matched []models.Lead
	for _, lead := range f.leads {
		if params.StartDate != nil && lead.CreatedAt.Before(*params.StartDate) {
			continue
		}
		if params.EndDate != nil && lead.CreatedAt.After(*params.EndDate) {
			continue
		}
		matched = append(matched, lead)
	}

	total := int64(len(matched))

	offset := (params.Page - 1) * params.Limit
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + params.Limit
	if end > len(matched) {
		end = len(matched)
	}

	return matched[offset:end], total, nil
}

func (f *fakeLeadRepo) Delete(id string) error {
	for i, lead := range f.leads {
		if lead.ID == id {
			f.leads = append(f.leads[:i], f.leads[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeLeadRepo) Count() (int64, error) {
	return int64(len(f.leads)), nil
}

func TestCreateLead(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)

	lead, err := svc.Create(CreateLeadInput{
		Name:    "山田太郎",
		Email:   "taro@example.com",
		Message: "お問い合わせです",
	})
	if err != nil {
		t.Fatalf("作成に失敗しました: %v", err)
	}
	if lead.ID == "" {
		t.Errorf("IDが払い出されていません")
	}
}

func TestCreateLeadValidation(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)

	tests := []struct {
		name  string
		input CreateLeadInput
	}{
		{"missing name", CreateLeadInput{Email: "a@example.com", Message: "hi"}},
		{"missing message", CreateLeadInput{Name: "a", Email: "a@example.com"}},
		{"invalid email", CreateLeadInput{Name: "a", Email: "not-an-email", Message: "hi"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.input)
			if !IsValidationError(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	// 検証エラー時にリポジトリへ書き込まれていないことを確認
	if count, _ := repo.Count(); count != 0 {
		t.Errorf("検証エラー時に行が作成されています: count=%d", count)
	}
}

func TestListLeadsByDateRange(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(CreateLeadInput{
			Name:    fmt.Sprintf("lead %d", i),
			Email:   "a@example.com",
			Message: "hi",
		}); err != nil {
			t.Fatalf("作成に失敗しました: %v", err)
		}
	}

	// 2件目〜4件目の期間で絞り込む
	start := repo.leads[1].CreatedAt
	end := repo.leads[3].CreatedAt
	result, err := svc.List(ListLeadsParams{StartDate: &start, EndDate: &end, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("一覧の取得に失敗しました: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, expected 3", result.Total)
	}
}

func TestDeleteLeadNotFound(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := NewLeadService(repo)

	if err := svc.Delete("no-such-lead"); !errors.Is(err, ErrLeadNotFound) {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}
