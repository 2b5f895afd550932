package services

import "errors"

// サービス層のエラー。コントローラーはこれらをHTTPステータスに対応づける。
var (
	// ErrWorkNotFound 作品が存在しない、または公開されていない
	ErrWorkNotFound = errors.New("作品が見つかりません")

	// ErrSlugConflict 明示的に指定されたスラッグが他の作品と衝突した
	ErrSlugConflict = errors.New("このスラッグは既に使用されています。別のタイトルまたはスラッグを指定してください")

	// ErrLeadNotFound リードが存在しない
	ErrLeadNotFound = errors.New("リードが見つかりません")
)

// ValidationError 入力値の検証エラー。リポジトリに触れる前に返す。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError 検証エラーを作成
func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}

// IsValidationError 検証エラーかどうかを判定
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
