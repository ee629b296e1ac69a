// Package user はユーザー作成のドメインサービスを提供する。
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hitoshi/userhub/internal/model"
	"github.com/hitoshi/userhub/internal/repository"
)

// MetricsRecorder はサービスが記録するメトリクスのインターフェース。
// metrics.Collectorの部分集合として定義する。
type MetricsRecorder interface {
	RecordUserCreated()
	RecordDuplicateEmail()
}

// Service はユーザー作成のドメインサービス。
type Service struct {
	repo    repository.UserRepository
	metrics MetricsRecorder
}

// NewService はServiceを生成する。metricsはnilを許容する。
func NewService(repo repository.UserRepository, metrics MetricsRecorder) *Service {
	return &Service{
		repo:    repo,
		metrics: metrics,
	}
}

// CreateUser はメールアドレスの重複を確認したうえで新規ユーザーを永続化する。
// 既に同一メールアドレスのユーザーが存在する場合はUSER_EXISTSのAPIErrorを返す。
// 事前確認と挿入はトランザクションで括らないため、同時リクエストの競合は
// ストレージ層のユニーク制約で検出され、同じUSER_EXISTSエラーに収束する。
func (s *Service) CreateUser(ctx context.Context, u *model.User) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		s.recordDuplicateEmail()
		return nil, model.NewUserExistsError()
	}

	created, err := s.repo.Create(ctx, u)
	if err != nil {
		var apiErr *model.APIError
		if errors.As(err, &apiErr) && apiErr.Code == model.ErrCodeUserExists {
			s.recordDuplicateEmail()
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recordUserCreated()
	return created, nil
}

func (s *Service) recordUserCreated() {
	if s.metrics != nil {
		s.metrics.RecordUserCreated()
	}
}

func (s *Service) recordDuplicateEmail() {
	if s.metrics != nil {
		s.metrics.RecordDuplicateEmail()
	}
}
