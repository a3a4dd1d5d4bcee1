package handler

import (
	"net/http"

	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/log"
	"github.com/vfg2006/sales-pipeline-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			if authenticating.IsCredentialsError(err) {
				log.ForContext(r.Context()).WithError(err).Warn("Login: tentativa rejeitada")
			}
			writeServiceError(w, r, "Login", err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{Token: token})
	})
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			writeServiceError(w, r, "GetMe", err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	})
}

// CreateUser cadastra um novo usuário, restrito a administradores
func CreateUser(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, "CreateUser", err)
			return
		}

		log.ForContext(r.Context()).WithField("user_id", user.ID).Info("CreateUser: usuário criado")
		writeJSON(w, http.StatusCreated, user)
	})
}
