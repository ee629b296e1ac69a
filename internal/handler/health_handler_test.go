package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// mockHealthChecker はHealthCheckerのモック実装。
type mockHealthChecker struct {
	pingFn func(ctx context.Context) error
}

func (m *mockHealthChecker) PingContext(ctx context.Context) error {
	if m.pingFn != nil {
		return m.pingFn(ctx)
	}
	return nil
}

// データベースに疎通できる場合は200を返すことを検証
func TestHealthHandler_Check_OK(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.Check(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("レスポンスの解析に失敗: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %q, want %q", body["status"], "ok")
	}
}

// データベースに疎通できない場合は503を返すことを検証
func TestHealthHandler_Check_Unavailable(t *testing.T) {
	h := NewHealthHandler(&mockHealthChecker{
		pingFn: func(ctx context.Context) error {
			return errors.New("connection refused")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.Check(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("レスポンスの解析に失敗: %v", err)
	}
	if body["status"] != "unavailable" {
		t.Errorf("status = %q, want %q", body["status"], "unavailable")
	}
}
