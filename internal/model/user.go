// Package model はドメインモデルを定義する。
package model

// ユーザー作成を許可する接続種別。
// database はパスワード認証、sms は電話番号ベースの認証を表す。
const (
	ConnectionDatabase = "database"
	ConnectionSMS      = "sms"
)

// IsValidConnection は接続種別がAPI経由のユーザー作成をサポートしているかを返す。
func IsValidConnection(connection string) bool {
	return connection == ConnectionDatabase || connection == ConnectionSMS
}

// User は管理APIで作成されるユーザーレコードを表す。
// Password は受け取った値をそのまま保持する（ハッシュ化は行わない）。
// ポインタ型のフィールドは未指定（NULL）を表現する。
type User struct {
	ID            int64
	Email         string
	Password      string
	Connection    string
	PhoneNumber   *string
	UserMetadata  map[string]any
	AppMetadata   map[string]any
	Blocked       bool
	EmailVerified bool
	PhoneVerified bool
	VerifyEmail   bool
	GivenName     *string
	FamilyName    *string
	Name          *string
	Nickname      *string
	Picture       *string
	UserID        *string
	Username      *string
}
