package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// fakeLeadService テスト用のLeadService実装
type fakeLeadService struct {
	created []services.CreateLeadInput
	deleted []string
}

func (f *fakeLeadService) Create(input services.CreateLeadInput) (*models.Lead, error) {
	f.created = append(f.created, input)
	return &models.Lead{
		ID:      "lead-1",
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}, nil
}

func (f *fakeLeadService) List(params services.ListLeadsParams) (*services.LeadListResult, error) {
	return &services.LeadListResult{
		Data:       []models.Lead{},
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: 0,
	}, nil
}

func (f *fakeLeadService) Delete(id string) error {
	if id == "missing" {
		return services.ErrLeadNotFound
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func setupLeadRouter(svc services.LeadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	controller := NewLeadController(svc)
	r.POST("/api/v1/leads", controller.Create)
	r.DELETE("/api/v1/admin/leads/:id", controller.Delete)
	return r
}

func TestLeadCreateEndpoint(t *testing.T) {
	svc := &fakeLeadService{}
	r := setupLeadRouter(svc)

	body := `{"name":"山田太郎","email":"taro@example.com","message":"お問い合わせです"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if len(svc.created) != 1 {
		t.Fatalf("サービスが呼ばれていません")
	}
	if svc.created[0].Email != "taro@example.com" {
		t.Errorf("入力が渡されていません: %+v", svc.created[0])
	}
}

func TestLeadCreateEndpointRejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","message":"hi"}`},
		{"missing message", `{"name":"a","email":"a@example.com"}`},
		{"invalid email", `{"name":"a","email":"not-an-email","message":"hi"}`},
		{"broken json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLeadService{}
			r := setupLeadRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/leads", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			if len(svc.created) != 0 {
				t.Errorf("検証エラー時にサービスが呼ばれています")
			}
		})
	}
}

func TestLeadDeleteEndpoint(t *testing.T) {
	svc := &fakeLeadService{}
	r := setupLeadRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/leads/lead-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	// 存在しないIDは404
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/admin/leads/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
