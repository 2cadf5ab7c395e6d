package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxai-app/voxai/internal/logger"
	"github.com/voxai-app/voxai/internal/service"
	"github.com/voxai-app/voxai/internal/store"
	"github.com/voxai-app/voxai/internal/utils"
	"github.com/voxai-app/voxai/models"
)

type mockSchemeService struct {
	createSchemeFn func(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	getSchemeFn    func(ctx context.Context, schemeID int64) (models.Scheme, error)
	listSchemesFn  func(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error)
	updateSchemeFn func(ctx context.Context, scheme models.Scheme) (models.Scheme, error)
	deleteSchemeFn func(ctx context.Context, schemeID int64) error
}

func (m *mockSchemeService) CreateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	return m.createSchemeFn(ctx, scheme)
}

func (m *mockSchemeService) GetScheme(ctx context.Context, schemeID int64) (models.Scheme, error) {
	return m.getSchemeFn(ctx, schemeID)
}

func (m *mockSchemeService) ListSchemes(ctx context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
	return m.listSchemesFn(ctx, filter)
}

func (m *mockSchemeService) UpdateScheme(ctx context.Context, scheme models.Scheme) (models.Scheme, error) {
	return m.updateSchemeFn(ctx, scheme)
}

func (m *mockSchemeService) DeleteScheme(ctx context.Context, schemeID int64) error {
	return m.deleteSchemeFn(ctx, schemeID)
}

func newHandlerWithSchemes(t *testing.T, schemes service.SchemeService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{SchemeService: schemes}, logger.Nop())
}

// withURLParam injects a chi route parameter into the request context, so
// handlers can be exercised without the full router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListSchemes_PassesQueryFilter(t *testing.T) {
	schemes := &mockSchemeService{
		listSchemesFn: func(_ context.Context, filter models.SchemeFilter) ([]models.Scheme, error) {
			assert.Equal(t, "health", filter.Category)
			assert.Equal(t, "insurance", filter.Keyword)
			return []models.Scheme{{SchemeID: 1, Title: "Health Cover"}}, nil
		},
	}
	h := newHandlerWithSchemes(t, schemes)

	req := httptest.NewRequest(http.MethodGet, "/api/schemes?category=health&q=insurance", nil)
	rec := httptest.NewRecorder()

	h.listSchemes(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Scheme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Health Cover", got[0].Title)
}

func TestGetScheme_InvalidID(t *testing.T) {
	h := newHandlerWithSchemes(t, &mockSchemeService{})

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/schemes/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()

	h.getScheme(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetScheme_NotFound(t *testing.T) {
	schemes := &mockSchemeService{
		getSchemeFn: func(_ context.Context, _ int64) (models.Scheme, error) {
			return models.Scheme{}, store.ErrSchemeNotFound
		},
	}
	h := newHandlerWithSchemes(t, schemes)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/schemes/404", nil), "id", "404")
	rec := httptest.NewRecorder()

	h.getScheme(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateScheme_RecordsCreator(t *testing.T) {
	schemes := &mockSchemeService{
		createSchemeFn: func(_ context.Context, scheme models.Scheme) (models.Scheme, error) {
			assert.Equal(t, "user-42", scheme.CreatedBy)
			scheme.SchemeID = 7
			return scheme, nil
		},
	}
	h := newHandlerWithSchemes(t, schemes)

	body := `{"title":"Farm Support","description":"Subsidy for small farms","category":"agriculture","created_by":"spoofed"}`
	req := httptest.NewRequest(http.MethodPost, "/api/schemes", strings.NewReader(body))
	req = req.WithContext(context.WithValue(req.Context(), utils.UserIDCtxKey, "user-42"))
	rec := httptest.NewRecorder()

	h.createScheme(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var created models.Scheme
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, int64(7), created.SchemeID)
	assert.Equal(t, "user-42", created.CreatedBy)
}

func TestUpdateScheme_UsesPathID(t *testing.T) {
	schemes := &mockSchemeService{
		updateSchemeFn: func(_ context.Context, scheme models.Scheme) (models.Scheme, error) {
			assert.Equal(t, int64(3), scheme.SchemeID)
			return scheme, nil
		},
	}
	h := newHandlerWithSchemes(t, schemes)

	body := `{"id":999,"title":"t","description":"d"}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/schemes/3", strings.NewReader(body)), "id", "3")
	rec := httptest.NewRecorder()

	h.updateScheme(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteScheme_NotFound(t *testing.T) {
	schemes := &mockSchemeService{
		deleteSchemeFn: func(_ context.Context, _ int64) error {
			return store.ErrSchemeNotFound
		},
	}
	h := newHandlerWithSchemes(t, schemes)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/schemes/404", nil), "id", "404")
	rec := httptest.NewRecorder()

	h.deleteScheme(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
