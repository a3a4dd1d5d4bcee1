package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-pipeline-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		setupMock      func(svc *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "sucesso",
			body: LoginRequest{Email: "ana@exemplo.com", Password: "Senha123"},
			setupMock: func(svc *mocks.MockAuthenticator) {
				svc.EXPECT().LoginUser(gomock.Any(), "ana@exemplo.com", "Senha123").Return("token-jwt", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "credenciais inválidas",
			body: LoginRequest{Email: "ana@exemplo.com", Password: "errada"},
			setupMock: func(svc *mocks.MockAuthenticator) {
				svc.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name: "usuário desativado",
			body: LoginRequest{Email: "ana@exemplo.com", Password: "Senha123"},
			setupMock: func(svc *mocks.MockAuthenticator) {
				svc.EXPECT().LoginUser(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewUserAuthError(authenticating.ErrUserDisabled, apiErrors.ErrUserDisabled, 4, ""))
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrUserDisabled,
		},
		{
			name:           "json inválido",
			body:           "email=ana",
			setupMock:      func(svc *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(svc)

			rec := serve(t, Authentication(svc), nil, http.MethodPost, "/v1/login", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
				return
			}

			var resp LoginResponse
			decodeBody(t, rec, &resp)
			assert.Equal(t, "token-jwt", resp.Token)
		})
	}
}

func TestGetMe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mocks.NewMockAuthenticator(ctrl)
	svc.EXPECT().GetUserProfile(gomock.Any(), memberClaims.UserID).Return(&domain.User{
		ID:           memberClaims.UserID,
		Name:         "Ana",
		Email:        "ana@exemplo.com",
		PasswordHash: "hash",
		Active:       true,
		RoleID:       domain.RoleMember,
	}, nil)

	rec := serve(t, Authentication(svc), memberClaims, http.MethodGet, "/v1/me", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hash")

	var user domain.User
	decodeBody(t, rec, &user)
	assert.Equal(t, "ana@exemplo.com", user.Email)

	rec = serve(t, Authentication(svc), nil, http.MethodGet, "/v1/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		setupMock      func(svc *mocks.MockAuthenticator)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "administrador cria usuário",
			claims: adminClaims,
			setupMock: func(svc *mocks.MockAuthenticator) {
				svc.EXPECT().CreateUser(gomock.Any(), &domain.CreateUserRequest{
					Name:     "Bruno",
					Email:    "bruno@exemplo.com",
					Password: "Senha123",
				}).Return(&domain.User{ID: 9, Name: "Bruno", Email: "bruno@exemplo.com", Active: true, RoleID: domain.RoleMember}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "email duplicado",
			claims: adminClaims,
			setupMock: func(svc *mocks.MockAuthenticator) {
				svc.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					Return(nil, authenticating.NewAuthError(authenticating.ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, ""))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrUserAlreadyExists,
		},
		{
			name:           "membro sem permissão",
			claims:         memberClaims,
			setupMock:      func(svc *mocks.MockAuthenticator) {},
			expectedStatus: http.StatusForbidden,
			expectedCode:   apiErrors.ErrInsufficientPrivilege,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mocks.NewMockAuthenticator(ctrl)
			tt.setupMock(svc)

			body := domain.CreateUserRequest{Name: "Bruno", Email: "bruno@exemplo.com", Password: "Senha123"}
			rec := serve(t, Authentication(svc), tt.claims, http.MethodPost, "/v1/users", body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}
