package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// 固定エラーレスポンスのステータスとボディを検証
func TestFixedErrorResponses(t *testing.T) {
	tests := []struct {
		name       string
		write      func(w http.ResponseWriter)
		wantStatus int
		wantError  string
	}{
		{
			name:       "unauthorized",
			write:      func(w http.ResponseWriter) { WriteUnauthorizedResponse(w) },
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid token or unauthorized access",
		},
		{
			name:       "forbidden",
			write:      func(w http.ResponseWriter) { WriteForbiddenResponse(w) },
			wantStatus: http.StatusForbidden,
			wantError:  "Insufficient scope or permissions",
		},
		{
			name:       "too_many_requests",
			write:      func(w http.ResponseWriter) { WriteTooManyRequestsResponse(w) },
			wantStatus: http.StatusTooManyRequests,
			wantError:  "Too many requests. Please try again later.",
		},
		{
			name:       "internal_server_error",
			write:      func(w http.ResponseWriter) { WriteInternalServerErrorResponse(w) },
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			tt.write(w)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want %q", ct, "application/json")
			}

			var body map[string]any
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("レスポンスの解析に失敗: %v", err)
			}
			if body["error"] != tt.wantError {
				t.Errorf("error = %v, want %q", body["error"], tt.wantError)
			}
			// errorフィールドのみであること
			if len(body) != 1 {
				t.Errorf("フィールド数 = %d, want 1: %v", len(body), body)
			}
		})
	}
}

// 任意のステータスとメッセージが反映されることを検証
func TestWriteErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorResponse(w, http.StatusConflict, "User already exists")

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}

	var body ErrorResponseBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("レスポンスの解析に失敗: %v", err)
	}
	if body.Error != "User already exists" {
		t.Errorf("error = %q, want %q", body.Error, "User already exists")
	}
}
