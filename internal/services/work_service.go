package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/studiofolio/portfolio_backend/internal/models"
	"github.com/studiofolio/portfolio_backend/internal/repository"
	"github.com/studiofolio/portfolio_backend/internal/utils"

	"gorm.io/gorm"
)

// CreateWorkInput 作品作成の入力
type CreateWorkInput struct {
	Title         string
	Slug          string // 任意。省略時はタイトルから生成する
	Category      models.WorkCategory
	Type          models.WorkType
	Year          int
	Client        string
	Description   string
	Tags          []string
	Featured      bool
	Status        models.WorkStatus // 省略時はDRAFT
	CoverImageURL string
	ExternalURL   string
	Images        []ImageInput
}

// UpdateWorkInput 作品更新の入力。nilのフィールドは変更しない。
// Imagesはギャラリーのあるべき姿の完全な宣言として常に適用される。
type UpdateWorkInput struct {
	Title         *string
	Slug          *string
	Category      *models.WorkCategory
	Type          *models.WorkType
	Year          *int
	Client        *string
	Description   *string
	Tags          []string
	Featured      *bool
	Status        *models.WorkStatus
	CoverImageURL *string
	ExternalURL   *string
	Images        []ImageInput
}

// ListWorksParams 作品一覧の取得条件
type ListWorksParams struct {
	Search   string
	Category string
	Type     string
	Status   string
	Page     int
	Limit    int
}

// WorkListResult ページングされた作品一覧
type WorkListResult struct {
	Data       []models.Work `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	TotalPages int           `json:"totalPages"`
}

// WorkService 作品に関するサービスインターフェース
type WorkService interface {
	Create(input CreateWorkInput) (*models.Work, error)
	GetByID(id string) (*models.Work, error)
	GetPublishedBySlug(slug string) (*models.Work, error)
	Update(id string, input UpdateWorkInput) (*models.Work, error)
	Delete(id string) error
	List(params ListWorksParams) (*WorkListResult, error)
	ListPublished(params ListWorksParams) (*WorkListResult, error)
}

// workService WorkServiceの実装
type workService struct {
	workRepo repository.WorkRepository
}

// NewWorkService WorkServiceを作成
func NewWorkService(workRepo repository.WorkRepository) WorkService {
	return &workService{workRepo: workRepo}
}

// Create 新しい作品を作成
func (s *workService) Create(input CreateWorkInput) (*models.Work, error) {
	if err := validateCreateInput(&input); err != nil {
		return nil, err
	}

	// スラッグを決定。明示的に指定された場合も生成規則を通す。
	source := input.Slug
	if source == "" {
		source = input.Title
	}
	slug := utils.GenerateSlug(source)
	if slug == "" {
		return nil, NewValidationError("タイトルまたはスラッグからスラッグを生成できません")
	}

	// 作成時の衝突は常にエラー。自動リネームはしない。
	exists, err := s.workRepo.SlugExists(slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrSlugConflict
	}

	status := input.Status
	if status == "" {
		status = models.StatusDraft
	}

	work := &models.Work{
		Title:         input.Title,
		Slug:          slug,
		Category:      input.Category,
		Type:          input.Type,
		Year:          input.Year,
		Client:        input.Client,
		Description:   input.Description,
		Tags:          models.StringList(input.Tags),
		Featured:      input.Featured,
		Status:        status,
		CoverImageURL: input.CoverImageURL,
		ExternalURL:   input.ExternalURL,
		Images:        buildImages(input.Images),
	}

	if err := s.workRepo.Create(work); err != nil {
		return nil, err
	}

	// 画像を表示順で含めて再取得
	return s.GetByID(work.ID)
}

// GetByID IDで作品を取得（管理者用、DRAFTも返す）
func (s *workService) GetByID(id string) (*models.Work, error) {
	work, err := s.workRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	return work, nil
}

// GetPublishedBySlug スラッグで公開済みの作品を取得。
// 存在しない場合も未公開の場合も同じエラーを返す。
func (s *workService) GetPublishedBySlug(slug string) (*models.Work, error) {
	work, err := s.workRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}
	if work.Status != models.StatusPublished {
		return nil, ErrWorkNotFound
	}
	return work, nil
}

// Update 作品を更新。スラッグの決定、ギャラリー画像の差分同期、
// 本体フィールドの更新を行う。
func (s *workService) Update(id string, input UpdateWorkInput) (*models.Work, error) {
	current, err := s.workRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	if err := validateUpdateInput(&input); err != nil {
		return nil, err
	}

	slug, err := s.resolveSlug(current, input.Title, input.Slug)
	if err != nil {
		return nil, err
	}

	// ギャラリー画像の同期計画を作る。Imagesが空（またはnil）の場合は
	// 既存のギャラリー画像をすべて削除する。カバー画像は影響を受けない。
	plan := reconcileImages(current.Images, input.Images)

	applyScalarUpdates(current, &input)
	current.Slug = slug
	current.Images = nil

	if err := s.workRepo.UpdateWithImages(current, plan.deleteIDs, plan.upserts, plan.creates); err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// resolveSlug 更新時のスラッグを決定する。
//   - スラッグが明示的に指定され現在と異なる場合: 他の作品と衝突したらエラー
//   - タイトルだけが変わった場合: 新しいタイトルから再生成し、衝突したら
//     タイムスタンプのサフィックスをつけて自動的に回避する
//   - どちらでもない場合: 現在のスラッグを維持する
func (s *workService) resolveSlug(current *models.Work, title, slug *string) (string, error) {
	if slug != nil && *slug != "" {
		candidate := utils.GenerateSlug(*slug)
		if candidate == "" {
			return "", NewValidationError("指定されたスラッグからスラッグを生成できません")
		}
		if candidate == current.Slug {
			return current.Slug, nil
		}
		exists, err := s.workRepo.SlugExists(candidate, current.ID)
		if err != nil {
			return "", err
		}
		if exists {
			return "", ErrSlugConflict
		}
		return candidate, nil
	}

	if title != nil && *title != current.Title {
		candidate := utils.GenerateSlug(*title)
		if candidate == "" {
			return "", NewValidationError("タイトルからスラッグを生成できません")
		}
		exists, err := s.workRepo.SlugExists(candidate, current.ID)
		if err != nil {
			return "", err
		}
		if exists {
			// タイトル由来の衝突はエラーにせず自動的に回避する
			return fmt.Sprintf("%s-%d", candidate, time.Now().UnixMilli()), nil
		}
		return candidate, nil
	}

	return current.Slug, nil
}

// Delete 作品とそのギャラリー画像を削除
func (s *workService) Delete(id string) error {
	if err := s.workRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrWorkNotFound
		}
		return err
	}
	return nil
}

// List 作品一覧を取得（管理者用、公開状態を自由に指定できる）
func (s *workService) List(params ListWorksParams) (*WorkListResult, error) {
	normalizePaging(&params.Page, &params.Limit)

	works, total, err := s.workRepo.List(repository.WorkListParams{
		Search:   params.Search,
		Category: params.Category,
		Type:     params.Type,
		Status:   params.Status,
		Page:     params.Page,
		Limit:    params.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &WorkListResult{
		Data:       works,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: totalPages(total, params.Limit),
	}, nil
}

// ListPublished 公開済みの作品一覧を取得。呼び出し側の指定に関わらず
// 公開状態はPUBLISHEDに固定される。
func (s *workService) ListPublished(params ListWorksParams) (*WorkListResult, error) {
	params.Status = string(models.StatusPublished)
	return s.List(params)
}

// validateCreateInput 作成入力の検証
func validateCreateInput(input *CreateWorkInput) error {
	if input.Title == "" {
		return NewValidationError("タイトルは必須です")
	}
	if input.Description == "" {
		return NewValidationError("説明は必須です")
	}
	if input.CoverImageURL == "" {
		return NewValidationError("カバー画像は必須です")
	}
	if !input.Category.IsValid() {
		return NewValidationError("無効なカテゴリーです")
	}
	if !input.Type.IsValid() {
		return NewValidationError("無効なタイプです")
	}
	if err := models.ValidateYear(input.Year); err != nil {
		return NewValidationError(err.Error())
	}
	if input.Status != "" && !input.Status.IsValid() {
		return NewValidationError("無効な公開状態です")
	}
	return nil
}

// validateUpdateInput 更新入力の検証。指定されたフィールドのみ検証する。
func validateUpdateInput(input *UpdateWorkInput) error {
	if input.Title != nil && *input.Title == "" {
		return NewValidationError("タイトルは必須です")
	}
	if input.Description != nil && *input.Description == "" {
		return NewValidationError("説明は必須です")
	}
	if input.CoverImageURL != nil && *input.CoverImageURL == "" {
		return NewValidationError("カバー画像は必須です")
	}
	if input.Category != nil && !input.Category.IsValid() {
		return NewValidationError("無効なカテゴリーです")
	}
	if input.Type != nil && !input.Type.IsValid() {
		return NewValidationError("無効なタイプです")
	}
	if input.Year != nil {
		if err := models.ValidateYear(*input.Year); err != nil {
			return NewValidationError(err.Error())
		}
	}
	if input.Status != nil && !input.Status.IsValid() {
		return NewValidationError("無効な公開状態です")
	}
	return nil
}

// applyScalarUpdates 指定されたフィールドだけを上書きする
func applyScalarUpdates(work *models.Work, input *UpdateWorkInput) {
	if input.Title != nil {
		work.Title = *input.Title
	}
	if input.Category != nil {
		work.Category = *input.Category
	}
	if input.Type != nil {
		work.Type = *input.Type
	}
	if input.Year != nil {
		work.Year = *input.Year
	}
	if input.Client != nil {
		work.Client = *input.Client
	}
	if input.Description != nil {
		work.Description = *input.Description
	}
	if input.Tags != nil {
		work.Tags = models.StringList(input.Tags)
	}
	if input.Featured != nil {
		work.Featured = *input.Featured
	}
	if input.Status != nil {
		work.Status = *input.Status
	}
	if input.CoverImageURL != nil {
		work.CoverImageURL = *input.CoverImageURL
	}
	if input.ExternalURL != nil {
		work.ExternalURL = *input.ExternalURL
	}
}

// buildImages 作成時の画像入力をモデルに変換。表示順は省略時に位置を使う。
func buildImages(inputs []ImageInput) []models.WorkImage {
	if len(inputs) == 0 {
		return nil
	}
	images := make([]models.WorkImage, 0, len(inputs))
	for i, in := range inputs {
		order := i
		if in.Order != nil {
			order = *in.Order
		}
		images = append(images, models.WorkImage{
			URL:   in.URL,
			Order: order,
		})
	}
	return images
}

// normalizePaging ページ番号と件数を正規化する
func normalizePaging(page, limit *int) {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 {
		*limit = 10
	}
	if *limit > 100 {
		*limit = 100
	}
}

// totalPages 合計ページ数を計算
func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
