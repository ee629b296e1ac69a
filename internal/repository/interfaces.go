// Package repository はデータストアへのアクセスを提供する。
package repository

import (
	"context"

	"github.com/hitoshi/userhub/internal/model"
)

// UserRepository はユーザーレコードの永続化インターフェース。
type UserRepository interface {
	// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// Create は新規ユーザーを永続化し、IDが採番されたレコードを返す。
	// メールアドレスのユニーク制約に違反した場合はUSER_EXISTSのAPIErrorを返す。
	Create(ctx context.Context, user *model.User) (*model.User, error)
}
