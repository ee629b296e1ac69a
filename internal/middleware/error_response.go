// Package middleware はHTTPミドルウェアを提供する。
package middleware

import (
	"encoding/json"
	"net/http"
)

// ErrorResponseBody はAPIエラーレスポンスの統一フォーマット。
type ErrorResponseBody struct {
	Error string `json:"error"`
}

// WriteErrorResponse は統一エラーフォーマットでHTTPエラーレスポンスを書き込む。
// すべてのAPIエンドポイントで一貫したエラーレスポンスを提供する。
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponseBody{
		Error: message,
	})
}

// WriteUnauthorizedResponse は401 Unauthorizedの固定レスポンスを書き込む。
func WriteUnauthorizedResponse(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusUnauthorized, "Invalid token or unauthorized access")
}

// WriteForbiddenResponse は403 Forbiddenの固定レスポンスを書き込む。
func WriteForbiddenResponse(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusForbidden, "Insufficient scope or permissions")
}

// WriteTooManyRequestsResponse は429 Too Many Requestsの固定レスポンスを書き込む。
func WriteTooManyRequestsResponse(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
}

// WriteInternalServerErrorResponse は内部サーバーエラーの統一レスポンスを書き込む。
// 詳細はログのみに記録し、ユーザーには一般的なメッセージを返す。
func WriteInternalServerErrorResponse(w http.ResponseWriter) {
	WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error.")
}
