package handler

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-pipeline-api/internal/api/handler/router"
	"github.com/vfg2006/sales-pipeline-api/internal/domain"
	"github.com/vfg2006/sales-pipeline-api/pkg/apiErrors"
	"github.com/vfg2006/sales-pipeline-api/pkg/middleware"
)

var (
	adminClaims  = &domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin, UserActive: true}
	memberClaims = &domain.Claims{UserID: 7, UserRoleID: domain.RoleMember, UserActive: true}
)

// serve monta o router com as rotas informadas e injeta as claims como faria o AuthMiddleware
func serve(t *testing.T, routes []router.Route, claims *domain.Claims, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, path, reader)
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	decodeBody(t, rec, &apiErr)
	return apiErr
}

func intPtr(i int) *int {
	return &i
}

func floatPtr(f float64) *float64 {
	return &f
}

type fakeCronJob struct {
	triggered int
	status    map[string]any
}

func (f *fakeCronJob) TriggerManualSync() {
	f.triggered++
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return f.status
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(_ context.Context) error {
	return f.err
}
