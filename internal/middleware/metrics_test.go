package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// mockHTTPMetricsRecorder はHTTPMetricsRecorderのモック実装。
type mockHTTPMetricsRecorder struct {
	statuses  []int
	durations []time.Duration
}

func (m *mockHTTPMetricsRecorder) RecordHTTPStatus(statusCode int) {
	m.statuses = append(m.statuses, statusCode)
}

func (m *mockHTTPMetricsRecorder) RecordRequestDuration(duration time.Duration) {
	m.durations = append(m.durations, duration)
}

// ステータスコードと処理時間が記録されることを検証
func TestMetricsMiddleware_RecordsStatusAndDuration(t *testing.T) {
	recorder := &mockHTTPMetricsRecorder{}
	mw := NewMetricsMiddleware(recorder)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))

	req := httptest.NewRequest(http.MethodPost, "/create-user", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(recorder.statuses) != 1 || recorder.statuses[0] != http.StatusConflict {
		t.Errorf("statuses = %v, want [%d]", recorder.statuses, http.StatusConflict)
	}
	if len(recorder.durations) != 1 {
		t.Errorf("durations = %v, want 1 entry", recorder.durations)
	}
}

// WriteHeaderを呼ばないハンドラーは200として記録されることを検証
func TestMetricsMiddleware_DefaultsTo200(t *testing.T) {
	recorder := &mockHTTPMetricsRecorder{}
	mw := NewMetricsMiddleware(recorder)

	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if len(recorder.statuses) != 1 || recorder.statuses[0] != http.StatusOK {
		t.Errorf("statuses = %v, want [%d]", recorder.statuses, http.StatusOK)
	}
}
