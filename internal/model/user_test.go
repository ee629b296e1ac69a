package model

import "testing"

// IsValidConnectionがdatabaseとsmsのみを許可することを検証
func TestIsValidConnection(t *testing.T) {
	tests := []struct {
		connection string
		want       bool
	}{
		{"database", true},
		{"sms", true},
		{"social", false},
		{"Database", false}, // 大文字小文字は区別する
		{"SMS", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.connection, func(t *testing.T) {
			if got := IsValidConnection(tt.connection); got != tt.want {
				t.Errorf("IsValidConnection(%q) = %v, want %v", tt.connection, got, tt.want)
			}
		})
	}
}
