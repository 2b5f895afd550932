package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var diacriticsRemover = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// GenerateSlug タイトルなどの文字列からURLセーフなスラッグを生成する。
// 小文字化し、ダイアクリティカルマークを除去し、英数字以外の連続を
// 1つのハイフンに置き換え、先頭と末尾のハイフンを取り除く。
// 決定的で副作用はなく、どんな入力でも失敗しない（空文字列になり得る）。
func GenerateSlug(input string) string {
	// ダイアクリティカルマークを除去（例: café → cafe）
	normalized, _, err := transform.String(diacriticsRemover, input)
	if err != nil {
		normalized = input
	}

	normalized = strings.ToLower(normalized)

	var b strings.Builder
	lastHyphen := false
	for _, r := range normalized {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}
