package services

import (
	"testing"

	"github.com/studiofolio/portfolio_backend/internal/models"
)

func intPtr(v int) *int {
	return &v
}

// 送信リストに残っている画像は更新、残っていない画像は削除になる
func TestReconcileImagesDeleteAndUpdate(t *testing.T) {
	existing := []models.WorkImage{
		{ID: "1", URL: "a"},
		{ID: "2", URL: "b"},
	}
	submitted := []ImageInput{
		{ID: "1", URL: "a", Order: intPtr(0)},
	}

	plan := reconcileImages(existing, submitted)

	if len(plan.deleteIDs) != 1 || plan.deleteIDs[0] != "2" {
		t.Fatalf("削除対象が一致しません: %v", plan.deleteIDs)
	}
	if len(plan.upserts) != 1 {
		t.Fatalf("更新対象が1件のはずです: %v", plan.upserts)
	}
	if plan.upserts[0].ID != "1" || plan.upserts[0].URL != "a" || plan.upserts[0].Order != 0 {
		t.Errorf("更新対象の内容が一致しません: %+v", plan.upserts[0])
	}
	if len(plan.creates) != 0 {
		t.Errorf("新規作成対象はないはずです: %v", plan.creates)
	}
}

// IDのないエントリは新規作成になり、URLの消えた既存画像は削除になる
func TestReconcileImagesDeleteAndCreate(t *testing.T) {
	existing := []models.WorkImage{
		{ID: "1", URL: "a"},
	}
	submitted := []ImageInput{
		{URL: "c", Order: intPtr(0)},
	}

	plan := reconcileImages(existing, submitted)

	if len(plan.deleteIDs) != 1 || plan.deleteIDs[0] != "1" {
		t.Fatalf("削除対象が一致しません: %v", plan.deleteIDs)
	}
	if len(plan.upserts) != 0 {
		t.Errorf("更新対象はないはずです: %v", plan.upserts)
	}
	if len(plan.creates) != 1 {
		t.Fatalf("新規作成対象が1件のはずです: %v", plan.creates)
	}
	if plan.creates[0].URL != "c" || plan.creates[0].Order != 0 {
		t.Errorf("新規作成対象の内容が一致しません: %+v", plan.creates[0])
	}
}

// 空のリストを送信すると既存の画像はすべて削除される
func TestReconcileImagesEmptySubmissionDeletesAll(t *testing.T) {
	existing := []models.WorkImage{
		{ID: "1", URL: "a"},
		{ID: "2", URL: "b"},
		{ID: "3", URL: "c"},
	}

	plan := reconcileImages(existing, nil)

	if len(plan.deleteIDs) != 3 {
		t.Fatalf("既存画像はすべて削除対象のはずです: %v", plan.deleteIDs)
	}
	if len(plan.upserts) != 0 || len(plan.creates) != 0 {
		t.Errorf("更新・新規作成対象はないはずです: %v %v", plan.upserts, plan.creates)
	}
}

// 表示順が省略された場合はリスト内の位置を使う
func TestReconcileImagesOrderDefaultsToIndex(t *testing.T) {
	submitted := []ImageInput{
		{URL: "a"},
		{URL: "b"},
		{URL: "c", Order: intPtr(9)},
	}

	plan := reconcileImages(nil, submitted)

	if len(plan.creates) != 3 {
		t.Fatalf("新規作成対象が3件のはずです: %v", plan.creates)
	}
	if plan.creates[0].Order != 0 || plan.creates[1].Order != 1 {
		t.Errorf("省略時の表示順は位置になるはずです: %+v", plan.creates)
	}
	if plan.creates[2].Order != 9 {
		t.Errorf("指定された表示順が優先されるはずです: %+v", plan.creates[2])
	}
}
