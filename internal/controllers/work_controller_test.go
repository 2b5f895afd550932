package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// fakeWorkService テスト用のWorkService実装
type fakeWorkService struct {
	lastParams services.ListWorksParams
	works      map[string]*models.Work
}

func (f *fakeWorkService) Create(input services.CreateWorkInput) (*models.Work, error) {
	return nil, nil
}

func (f *fakeWorkService) GetByID(id string) (*models.Work, error) {
	return nil, services.ErrWorkNotFound
}

func (f *fakeWorkService) GetPublishedBySlug(slug string) (*models.Work, error) {
	work, ok := f.works[slug]
	if !ok || work.Status != models.StatusPublished {
		return nil, services.ErrWorkNotFound
	}
	return work, nil
}

func (f *fakeWorkService) Update(id string, input services.UpdateWorkInput) (*models.Work, error) {
	return nil, services.ErrWorkNotFound
}

func (f *fakeWorkService) Delete(id string) error {
	return services.ErrWorkNotFound
}

func (f *fakeWorkService) List(params services.ListWorksParams) (*services.WorkListResult, error) {
	f.lastParams = params
	return &services.WorkListResult{Data: []models.Work{}, Page: params.Page, Limit: params.Limit}, nil
}

func (f *fakeWorkService) ListPublished(params services.ListWorksParams) (*services.WorkListResult, error) {
	params.Status = string(models.StatusPublished)
	return f.List(params)
}

func setupWorkRouter(svc services.WorkService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewWorkController(svc)
	r.GET("/api/v1/works", controller.List)
	r.GET("/api/v1/works/:slug", controller.GetBySlug)
	return r
}

// 公開一覧はクエリパラメータを引き継ぎつつ公開状態をPUBLISHEDに固定する
func TestPublicWorkListFixesPublishedStatus(t *testing.T) {
	svc := &fakeWorkService{works: map[string]*models.Work{}}
	r := setupWorkRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/works?search=coffee&category=BRANDING&type=DESIGN&page=2&limit=5", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	if svc.lastParams.Status != string(models.StatusPublished) {
		t.Errorf("公開状態がPUBLISHEDに固定されていません: %q", svc.lastParams.Status)
	}
	if svc.lastParams.Search != "coffee" || svc.lastParams.Category != "BRANDING" || svc.lastParams.Type != "DESIGN" {
		t.Errorf("検索条件が渡されていません: %+v", svc.lastParams)
	}
	if svc.lastParams.Page != 2 || svc.lastParams.Limit != 5 {
		t.Errorf("ページングが渡されていません: %+v", svc.lastParams)
	}
}

func TestPublicWorkGetBySlug(t *testing.T) {
	svc := &fakeWorkService{
		works: map[string]*models.Work{
			"published-work": {ID: "w1", Slug: "published-work", Status: models.StatusPublished},
			"draft-work":     {ID: "w2", Slug: "draft-work", Status: models.StatusDraft},
		},
	}
	r := setupWorkRouter(svc)

	// 公開済みは200
	req := httptest.NewRequest(http.MethodGet, "/api/v1/works/published-work", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var work models.Work
	if err := json.Unmarshal(w.Body.Bytes(), &work); err != nil {
		t.Fatalf("レスポンスの解析に失敗しました: %v", err)
	}
	if work.ID != "w1" {
		t.Errorf("作品が一致しません: %+v", work)
	}

	// DRAFTと存在しないスラッグは404
	for _, slug := range []string{"draft-work", "no-such-work"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/works/"+slug, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404, got %d", slug, w.Code)
		}
	}
}
