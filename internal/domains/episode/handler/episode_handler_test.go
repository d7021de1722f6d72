package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"anime-catalog/internal/domains/episode/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockEpisodeService struct {
	mock.Mock
}

func (m *MockEpisodeService) ListByAnime(ctx context.Context, animeID int64) ([]model.Episode, error) {
	args := m.Called(ctx, animeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Episode), args.Error(1)
}

func (m *MockEpisodeService) GetByID(ctx context.Context, id int64) (*model.Episode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Episode), args.Error(1)
}

func (m *MockEpisodeService) Create(ctx context.Context, req model.EpisodeRequest) (*model.Episode, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Episode), args.Error(1)
}

func (m *MockEpisodeService) Update(ctx context.Context, id int64, req model.EpisodeRequest) (*model.Episode, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Episode), args.Error(1)
}

func (m *MockEpisodeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func setupRouter(svc *MockEpisodeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewEpisodeHandler(svc)
	r.GET("/api/anime/:id/episodes", h.ListByAnime)
	r.GET("/api/episodes/:id", h.GetByID)
	r.POST("/api/episodes", h.Create)
	r.PUT("/api/episodes/:id", h.Update)
	r.DELETE("/api/episodes/:id", h.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestListByAnime(t *testing.T) {
	svc := new(MockEpisodeService)
	svc.On("ListByAnime", mock.Anything, int64(3)).Return([]model.Episode{}, nil)

	w := do(setupRouter(svc), http.MethodGet, "/api/anime/3/episodes", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(svc *MockEpisodeService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"anime_id":1,"number":1,"vk_url":"https://vk.com/x"}`,
			mockSetup: func(svc *MockEpisodeService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(&model.Episode{ID: 5, AnimeID: 1, Number: 1, VKURL: "https://vk.com/x"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"vk_url":"https://vk.com/x"`,
		},
		{
			name: "unknown anime is 400",
			body: `{"anime_id":404,"number":1,"vk_url":"u"}`,
			mockSetup: func(svc *MockEpisodeService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: anime_id=404", model.ErrAnimeReference))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `anime_id`,
		},
		{
			name:       "non-numeric number",
			body:       `{"anime_id":1,"number":"one","vk_url":"u"}`,
			mockSetup:  func(svc *MockEpisodeService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `Invalid request body`,
		},
		{
			name: "database failure hides detail",
			body: `{"anime_id":1,"number":1,"vk_url":"u"}`,
			mockSetup: func(svc *MockEpisodeService) {
				svc.On("Create", mock.Anything, mock.Anything).
					Return(nil, errors.New("pq: relation episodes does not exist"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `Internal server error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockEpisodeService)
			tt.mockSetup(svc)

			w := do(setupRouter(svc), http.MethodPost, "/api/episodes", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "relation")
		})
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := new(MockEpisodeService)
	svc.On("GetByID", mock.Anything, int64(9)).Return(nil, model.ErrEpisodeNotFound)

	w := do(setupRouter(svc), http.MethodGet, "/api/episodes/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Episode not found"}`, w.Body.String())
}

func TestUpdate(t *testing.T) {
	svc := new(MockEpisodeService)
	svc.On("Update", mock.Anything, int64(5), mock.Anything).
		Return(&model.Episode{ID: 5, AnimeID: 1, Number: 2, VKURL: "v"}, nil)

	w := do(setupRouter(svc), http.MethodPut, "/api/episodes/5", `{"number":2,"vk_url":"v"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"number":2`)
}

func TestDelete(t *testing.T) {
	svc := new(MockEpisodeService)
	svc.On("Delete", mock.Anything, int64(5)).Return(nil)

	w := do(setupRouter(svc), http.MethodDelete, "/api/episodes/5", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(setupRouter(svc), http.MethodDelete, "/api/episodes/zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
