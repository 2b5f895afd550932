package utils

import (
	"crypto/rand"
	"math/big"
	"path/filepath"
	"strings"
)

const randomChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString 指定した長さのランダムな文字列を生成
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(randomChars))))
		if err != nil {
			// 乱数生成に失敗した場合は固定文字で埋める
			b[i] = 'x'
			continue
		}
		b[i] = randomChars[n.Int64()]
	}
	return string(b)
}

// IsAllowedExtension 拡張子が許可リストに含まれるかを確認
func IsAllowedExtension(fileName string, allowed []string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}
