package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/hitoshi/userhub/internal/model"
)

// uniqueViolation はPostgreSQLのunique_violationエラーコード。
const uniqueViolation = "23505"

// PostgresUserRepo はPostgreSQLを使用したユーザーリポジトリ。
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo はPostgresUserRepoを生成する。
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// userColumns はusersテーブルのカラム一覧（SELECT/INSERTで共用する）。
const userColumns = `email, password, connection, phone_number, user_metadata, app_metadata,
	blocked, email_verified, phone_verified, verify_email,
	given_name, family_name, name, nickname, picture, user_id, username`

// FindByEmail は指定メールアドレスのユーザーを取得する。見つからない場合はnilを返す。
func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	var userMeta, appMeta []byte

	err := r.db.QueryRowContext(ctx,
		`SELECT id, `+userColumns+` FROM users WHERE email = $1`,
		email,
	).Scan(
		&user.ID, &user.Email, &user.Password, &user.Connection,
		&user.PhoneNumber, &userMeta, &appMeta,
		&user.Blocked, &user.EmailVerified, &user.PhoneVerified, &user.VerifyEmail,
		&user.GivenName, &user.FamilyName, &user.Name, &user.Nickname,
		&user.Picture, &user.UserID, &user.Username,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	if user.UserMetadata, err = decodeMetadata(userMeta); err != nil {
		return nil, fmt.Errorf("failed to decode user_metadata: %w", err)
	}
	if user.AppMetadata, err = decodeMetadata(appMeta); err != nil {
		return nil, fmt.Errorf("failed to decode app_metadata: %w", err)
	}

	return user, nil
}

// Create は新規ユーザーを挿入し、採番されたIDを設定して返す。
// email のユニーク制約に違反した場合はUSER_EXISTSのAPIErrorを返す。
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	userMeta, err := encodeMetadata(user.UserMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode user_metadata: %w", err)
	}
	appMeta, err := encodeMetadata(user.AppMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to encode app_metadata: %w", err)
	}

	err = r.db.QueryRowContext(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		 RETURNING id`,
		user.Email, user.Password, user.Connection,
		user.PhoneNumber, userMeta, appMeta,
		user.Blocked, user.EmailVerified, user.PhoneVerified, user.VerifyEmail,
		user.GivenName, user.FamilyName, user.Name, user.Nickname,
		user.Picture, user.UserID, user.Username,
	).Scan(&user.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, model.NewUserExistsError()
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

// isUniqueViolation はエラーがユニーク制約違反かどうかを判定する。
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// encodeMetadata はメタデータをJSONB格納用のバイト列に変換する。nilはNULLとして扱う。
func encodeMetadata(m map[string]any) (any, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// decodeMetadata はJSONBカラムの値をマップに変換する。NULLはnilとして扱う。
func decodeMetadata(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// compile-time interface check
var _ UserRepository = (*PostgresUserRepo)(nil)
