package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkStatus 作品の公開状態
type WorkStatus string

const (
	StatusDraft     WorkStatus = "DRAFT"
	StatusPublished WorkStatus = "PUBLISHED"
)

// IsValid 有効な公開状態かどうかを確認
func (s WorkStatus) IsValid() bool {
	return s == StatusDraft || s == StatusPublished
}

// WorkCategory 作品カテゴリー
type WorkCategory string

const (
	CategoryBranding    WorkCategory = "BRANDING"
	CategoryWebsite     WorkCategory = "WEBSITE"
	CategorySystem      WorkCategory = "SYSTEM"
	CategoryAdvertising WorkCategory = "ADVERTISING"
	CategoryThreeD      WorkCategory = "THREED"
	CategoryDesign      WorkCategory = "DESIGN"
	CategorySaaS        WorkCategory = "SAAS"
	CategoryPhotography WorkCategory = "PHOTOGRAPHY"
	CategoryOther       WorkCategory = "OTHER"
)

// IsValid 有効なカテゴリーかどうかを確認
func (c WorkCategory) IsValid() bool {
	switch c {
	case CategoryBranding, CategoryWebsite, CategorySystem, CategoryAdvertising,
		CategoryThreeD, CategoryDesign, CategorySaaS, CategoryPhotography, CategoryOther:
		return true
	}
	return false
}

// WorkType 作品の制作タイプ
type WorkType string

const (
	TypeDesign      WorkType = "DESIGN"
	TypeDevelopment WorkType = "DEVELOPMENT"
	TypeMarketing   WorkType = "MARKETING"
	TypeAnimation   WorkType = "ANIMATION"
	TypePhotography WorkType = "PHOTOGRAPHY"
	TypeOther       WorkType = "OTHER"
)

// IsValid 有効な制作タイプかどうかを確認
func (t WorkType) IsValid() bool {
	switch t {
	case TypeDesign, TypeDevelopment, TypeMarketing, TypeAnimation, TypePhotography, TypeOther:
		return true
	}
	return false
}

// StringList 文字列配列をJSON文字列としてTEXTカラムに保存する型。
// シリアライズはこの型の中に閉じ込め、リポジトリの外には[]stringとして見せる。
type StringList []string

// Value driver.Valuerの実装
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan sql.Scannerの実装
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringListに変換できない型です: %T", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = out
	return nil
}

// Work 作品モデル
type Work struct {
	ID            string       `json:"id" gorm:"primaryKey;size:36"`
	Title         string       `json:"title" gorm:"not null"`
	Slug          string       `json:"slug" gorm:"uniqueIndex;size:191;not null"`
	Category      WorkCategory `json:"category" gorm:"size:32;not null"`
	Type          WorkType     `json:"type" gorm:"size:32;not null"`
	Year          int          `json:"year" gorm:"not null"`
	Client        string       `json:"client"`
	Description   string       `json:"description" gorm:"type:text"`
	Tags          StringList   `json:"tags" gorm:"type:text"`
	Featured      bool         `json:"featured" gorm:"default:false"`
	Status        WorkStatus   `json:"status" gorm:"size:16;not null;default:'DRAFT';index"`
	CoverImageURL string       `json:"coverImageUrl" gorm:"not null"`
	ExternalURL   string       `json:"externalUrl"`
	CreatedAt     time.Time    `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time    `json:"updatedAt"`

	// リレーション
	Images []WorkImage `json:"images" gorm:"constraint:OnDelete:CASCADE"`
}

// BeforeCreate 作成前にUUIDを払い出す
func (w *Work) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// WorkImage 作品ギャラリーの画像モデル。親のWorkなしには存在しない。
type WorkImage struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	WorkID    string    `json:"workId" gorm:"size:36;not null;index"`
	URL       string    `json:"url" gorm:"not null"`
	Order     int       `json:"order" gorm:"column:display_order;not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate 作成前にUUIDを払い出す
func (i *WorkImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Lead お問い合わせフォームからのリードモデル
type Lead struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}

// BeforeCreate 作成前にUUIDを払い出す
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}

// User 管理者ユーザーモデル
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:191;not null"`
	Password  string    `json:"-" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate 作成前にUUIDを払い出す
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ValidateYear 制作年が許容範囲内かを確認
func ValidateYear(year int) error {
	if year < 1900 || year > 2100 {
		return errors.New("制作年は1900〜2100の範囲で指定してください")
	}
	return nil
}
