// Package handler はHTTPハンドラーとルーティングを提供する。
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hitoshi/userhub/internal/middleware"
	"github.com/hitoshi/userhub/internal/model"
)

// UserServiceInterface はユーザーハンドラーが必要とするサービスインターフェース。
type UserServiceInterface interface {
	// CreateUser は新規ユーザーを作成する。
	// 同一メールアドレスのユーザーが存在する場合はUSER_EXISTSのAPIErrorを返す。
	CreateUser(ctx context.Context, u *model.User) (*model.User, error)
}

// UserHandler はユーザー作成のHTTPハンドラー。
type UserHandler struct {
	service UserServiceInterface
}

// NewUserHandler はUserHandlerを生成する。
func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

// createUserRequest はユーザー作成リクエストのボディ。
// 必須フィールドはポインタ型で受け取り、未指定とゼロ値を区別する。
type createUserRequest struct {
	Email         *string        `json:"email"`
	Password      *string        `json:"password"`
	Connection    *string        `json:"connection"`
	PhoneNumber   *string        `json:"phone_number"`
	UserMetadata  map[string]any `json:"user_metadata"`
	AppMetadata   map[string]any `json:"app_metadata"`
	Blocked       *bool          `json:"blocked"`
	EmailVerified *bool          `json:"email_verified"`
	PhoneVerified *bool          `json:"phone_verified"`
	VerifyEmail   *bool          `json:"verify_email"`
	GivenName     *string        `json:"given_name"`
	FamilyName    *string        `json:"family_name"`
	Name          *string        `json:"name"`
	Nickname      *string        `json:"nickname"`
	Picture       *string        `json:"picture"`
	UserID        *string        `json:"user_id"`
	Username      *string        `json:"username"`
}

// createdUserResponse は作成されたユーザーのAPIレスポンス。
// passwordやconnectionなど、この6フィールド以外は公開しない。
type createdUserResponse struct {
	Email       string  `json:"email"`
	PhoneNumber *string `json:"phone_number"`
	GivenName   *string `json:"given_name"`
	FamilyName  *string `json:"family_name"`
	Nickname    *string `json:"nickname"`
	UserID      *string `json:"user_id"`
}

// createUserResponse はユーザー作成成功時のレスポンスボディ。
type createUserResponse struct {
	Message string              `json:"message"`
	User    createdUserResponse `json:"user"`
}

// CreateUser は新規ユーザーを作成する。
// POST /create-user
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest, model.NewInvalidBodyError())
		return
	}

	if apiErr := validateCreateUserRequest(&req); apiErr != nil {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	created, err := h.service.CreateUser(r.Context(), buildUser(&req))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createUserResponse{
		Message: "User successfully created.",
		User: createdUserResponse{
			Email:       created.Email,
			PhoneNumber: created.PhoneNumber,
			GivenName:   created.GivenName,
			FamilyName:  created.FamilyName,
			Nickname:    created.Nickname,
			UserID:      created.UserID,
		},
	})
}

// validateCreateUserRequest はリクエストボディを検証する。
// 検証は定義順に短絡評価され、最初に失敗したチェックのエラーを返す。
func validateCreateUserRequest(req *createUserRequest) *model.APIError {
	// 必須フィールドの検証（email、password、connectionの順）
	required := []struct {
		name  string
		value *string
	}{
		{"email", req.Email},
		{"password", req.Password},
		{"connection", req.Connection},
	}
	for _, field := range required {
		if field.value == nil {
			return model.NewMissingFieldError(field.name)
		}
	}

	if !model.IsValidConnection(*req.Connection) {
		return model.NewInvalidConnectionError()
	}

	// usernameはdatabase接続でのみ設定できる
	if req.Username != nil && *req.Connection != model.ConnectionDatabase {
		return model.NewUsernameNotAllowedError()
	}

	// 接続種別の再チェック
	if !model.IsValidConnection(*req.Connection) {
		return model.NewConnectionNotFoundError()
	}

	return nil
}

// buildUser は検証済みリクエストからUserを組み立て、省略された項目にデフォルト値を適用する。
// デフォルト: blocked=false、email_verified=false、phone_verified=false、verify_email=true。
func buildUser(req *createUserRequest) *model.User {
	return &model.User{
		Email:         *req.Email,
		Password:      *req.Password,
		Connection:    *req.Connection,
		PhoneNumber:   req.PhoneNumber,
		UserMetadata:  req.UserMetadata,
		AppMetadata:   req.AppMetadata,
		Blocked:       boolOrDefault(req.Blocked, false),
		EmailVerified: boolOrDefault(req.EmailVerified, false),
		PhoneVerified: boolOrDefault(req.PhoneVerified, false),
		VerifyEmail:   boolOrDefault(req.VerifyEmail, true),
		GivenName:     req.GivenName,
		FamilyName:    req.FamilyName,
		Name:          req.Name,
		Nickname:      req.Nickname,
		Picture:       req.Picture,
		UserID:        req.UserID,
		Username:      req.Username,
	}
}

func boolOrDefault(v *bool, defaultVal bool) bool {
	if v == nil {
		return defaultVal
	}
	return *v
}

// writeAPIErrorResponse はAPIErrorを統一フォーマットのJSONで書き込む。
func writeAPIErrorResponse(w http.ResponseWriter, statusCode int, apiErr *model.APIError) {
	middleware.WriteErrorResponse(w, statusCode, apiErr.Message)
}

// handleServiceError はサービス層から返されたエラーを適切なHTTPステータスコードに変換する。
func handleServiceError(w http.ResponseWriter, err error) {
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		writeAPIErrorResponse(w, mapAPIErrorToHTTPStatus(apiErr), apiErr)
		return
	}

	// APIError以外のエラーは内部サーバーエラーとして扱う
	slog.Error("internal server error", slog.String("error", err.Error()))
	middleware.WriteInternalServerErrorResponse(w)
}

// mapAPIErrorToHTTPStatus はAPIErrorコードからHTTPステータスコードにマッピングする。
func mapAPIErrorToHTTPStatus(apiErr *model.APIError) int {
	switch apiErr.Code {
	case model.ErrCodeUserExists:
		return http.StatusConflict
	case model.ErrCodeInvalidBody,
		model.ErrCodeMissingField,
		model.ErrCodeInvalidConnection,
		model.ErrCodeConnectionNotFound,
		model.ErrCodeUsernameNotAllowed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
