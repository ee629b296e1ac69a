// Package model はドメインモデルを定義する。
package model

import "fmt"

// APIError はAPIが返すエラーを表す。
// Message はそのままレスポンスボディのerrorフィールドとして公開される。
type APIError struct {
	Code    string // エラーコード
	Message string // エラーメッセージ
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeInvalidBody        = "INVALID_BODY"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeInvalidConnection  = "INVALID_CONNECTION"
	ErrCodeConnectionNotFound = "CONNECTION_NOT_FOUND"
	ErrCodeUsernameNotAllowed = "USERNAME_NOT_ALLOWED"
	ErrCodeUserExists         = "USER_EXISTS"
)

// NewInvalidBodyError はリクエストボディの解析失敗エラーを生成する。
func NewInvalidBodyError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidBody,
		Message: "Invalid JSON body.",
	}
}

// NewMissingFieldError は必須フィールド欠落エラーを生成する。
func NewMissingFieldError(field string) *APIError {
	return &APIError{
		Code:    ErrCodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

// NewInvalidConnectionError はユーザー作成をサポートしない接続種別エラーを生成する。
func NewInvalidConnectionError() *APIError {
	return &APIError{
		Code:    ErrCodeInvalidConnection,
		Message: "Connection does not support user creation through the API. It must either be a database or SMS connection.",
	}
}

// NewConnectionNotFoundError は存在しない接続種別エラーを生成する。
func NewConnectionNotFoundError() *APIError {
	return &APIError{
		Code:    ErrCodeConnectionNotFound,
		Message: "Connection does not exist.",
	}
}

// NewUsernameNotAllowedError はusernameを設定できない接続種別エラーを生成する。
func NewUsernameNotAllowedError() *APIError {
	return &APIError{
		Code:    ErrCodeUsernameNotAllowed,
		Message: "Cannot set username for connection without requires_username.",
	}
}

// NewUserExistsError は同一メールアドレスのユーザーが既に存在するエラーを生成する。
func NewUserExistsError() *APIError {
	return &APIError{
		Code:    ErrCodeUserExists,
		Message: "User already exists",
	}
}
