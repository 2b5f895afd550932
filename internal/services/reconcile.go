package services

import (
	"github.com/studiofolio/portfolio_backend/internal/models"
)

// ImageInput 送信されたギャラリー画像のエントリ。
// IDが空でなければ既存画像の更新、空であれば新規作成として扱う。
type ImageInput struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Order *int   `json:"order"`
}

// imageSyncPlan ギャラリー画像の同期計画
type imageSyncPlan struct {
	deleteIDs []string
	upserts   []models.WorkImage // IDつき（既存画像の更新）
	creates   []models.WorkImage // IDなし（新規作成）
}

// reconcileImages 現在のギャラリー画像と送信された画像リストの差分を計算する。
// 送信リストはギャラリーのあるべき姿の完全な宣言として扱う（差分置き換え方式）。
//   - 送信リストに存在しないURLの既存画像は削除対象
//   - IDつきのエントリは更新対象（URLと表示順を上書き）
//   - IDなしのエントリは新規作成対象
//
// 表示順は送信された値をそのまま使い、省略時はリスト内の位置を使う。
// 空のリストを送信すると既存のギャラリー画像はすべて削除される。
func reconcileImages(existing []models.WorkImage, submitted []ImageInput) imageSyncPlan {
	var plan imageSyncPlan

	submittedURLs := make(map[string]struct{}, len(submitted))
	for _, in := range submitted {
		submittedURLs[in.URL] = struct{}{}
	}

	// 送信リストにURLが残っていない既存画像を削除対象にする
	for _, img := range existing {
		if _, ok := submittedURLs[img.URL]; !ok {
			plan.deleteIDs = append(plan.deleteIDs, img.ID)
		}
	}

	for i, in := range submitted {
		order := i
		if in.Order != nil {
			order = *in.Order
		}

		if in.ID != "" {
			plan.upserts = append(plan.upserts, models.WorkImage{
				ID:    in.ID,
				URL:   in.URL,
				Order: order,
			})
		} else {
			plan.creates = append(plan.creates, models.WorkImage{
				URL:   in.URL,
				Order: order,
			})
		}
	}

	return plan
}
