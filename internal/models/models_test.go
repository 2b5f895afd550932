package models

import (
	"testing"
)

// タグのシリアライズはStringListの中に閉じている。
// データベースにはJSON文字列、アプリには[]stringとして見える。
func TestStringListScanValue(t *testing.T) {
	original := StringList{"React", "UI/UX", "日本語タグ"}

	value, err := original.Value()
	if err != nil {
		t.Fatalf("Valueに失敗しました: %v", err)
	}

	var scanned StringList
	if err := scanned.Scan(value); err != nil {
		t.Fatalf("Scanに失敗しました: %v", err)
	}

	if len(scanned) != len(original) {
		t.Fatalf("要素数が一致しません: %v", scanned)
	}
	for i := range original {
		if scanned[i] != original[i] {
			t.Errorf("要素が一致しません: %q != %q", scanned[i], original[i])
		}
	}
}

func TestStringListScanNull(t *testing.T) {
	var l StringList
	if err := l.Scan(nil); err != nil {
		t.Fatalf("NULLのScanに失敗しました: %v", err)
	}
	if l == nil || len(l) != 0 {
		t.Errorf("NULLは空のリストになるはずです: %v", l)
	}
}

func TestValidateYear(t *testing.T) {
	if err := ValidateYear(2023); err != nil {
		t.Errorf("2023は有効なはずです: %v", err)
	}
	if err := ValidateYear(1899); err == nil {
		t.Errorf("1899は無効なはずです")
	}
	if err := ValidateYear(2101); err == nil {
		t.Errorf("2101は無効なはずです")
	}
}
