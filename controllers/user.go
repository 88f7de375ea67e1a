package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"catdogeats/middleware"
	"catdogeats/utils"

	"go.uber.org/zap"
)

// UserController handles sign-in and the signed-in profile
type UserController struct {
	Backend AuthAPI
	Log     *zap.Logger
}

// NewUserController creates a new UserController
func NewUserController(backend AuthAPI, log *zap.Logger) *UserController {
	return &UserController{
		Backend: backend,
		Log:     log,
	}
}

// Login exchanges credentials for an access token issued by the backend
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var credentials struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "잘못된 요청입니다.")
		return
	}
	if strings.TrimSpace(credentials.Email) == "" || credentials.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "이메일과 비밀번호를 입력해주세요.")
		return
	}

	result, err := uc.Backend.Login(r.Context(), credentials.Email, credentials.Password)
	if err != nil {
		uc.Log.Info("login rejected", zap.String("email", credentials.Email), zap.Error(err))
		writeBackendError(w, err, "이메일 또는 비밀번호가 올바르지 않습니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, result)
}

// GetProfile returns who the access token belongs to
func (uc *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		utils.WriteError(w, http.StatusUnauthorized, "로그인이 필요합니다.")
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]string{
		"id":    claims.UserID,
		"email": claims.Email,
		"role":  claims.Role,
	})
}
