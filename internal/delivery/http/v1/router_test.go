package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillsync-backend/config"
	v1 "skillsync-backend/internal/delivery/http/v1"
	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
	"skillsync-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

type MockCareerUsecase struct {
	mock.Mock
}

func (m *MockCareerUsecase) SuggestCareerPaths(ctx context.Context, req *domain.CareerSuggestionRequest) ([]domain.CareerPath, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareerPath), args.Error(1)
}

func (m *MockCareerUsecase) ListCareerPaths(ctx context.Context) ([]domain.CareerPath, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CareerPath), args.Error(1)
}

func (m *MockCareerUsecase) GetCareerPath(ctx context.Context, id int) (*domain.CareerPath, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CareerPath), args.Error(1)
}

type MockResumeUsecase struct {
	mock.Mock
}

func (m *MockResumeUsecase) ProcessResume(ctx context.Context, fileID, filename, path string) (*domain.ResumeUploadResponse, error) {
	args := m.Called(ctx, fileID, filename, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeUploadResponse), args.Error(1)
}

func (m *MockResumeUsecase) GetAnalysis(ctx context.Context, fileID string) (*domain.ResumeUploadResponse, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeUploadResponse), args.Error(1)
}

type apiResponse struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:                     "8000",
		UploadDir:                t.TempDir(),
		RateLimitWindowSeconds:   60,
		RateLimitGlobalThreshold: 1000,
		RateLimitUploadThreshold: 1000,
	}
}

func newTestRouter(t *testing.T, careerUC domain.CareerUsecase, resumeUC domain.ResumeUsecase) *gin.Engine {
	return v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		CareerUC: careerUC,
		Config:   testConfig(t),
	})
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, new(MockCareerUsecase), new(MockResumeUsecase))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.RequestID)
}

func TestCareerHandler_SuggestCareerPaths(t *testing.T) {
	t.Run("returns suggestions from the usecase", func(t *testing.T) {
		careerUC := new(MockCareerUsecase)
		careerUC.On("SuggestCareerPaths", mock.Anything, mock.Anything).
			Return([]domain.CareerPath{{ID: 1, Title: "Backend Developer"}}, nil)
		r := newTestRouter(t, careerUC, new(MockResumeUsecase))

		body := bytes.NewBufferString(`{"skills":["python"],"experience_years":3}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/career/suggest", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var paths []domain.CareerPath
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &paths))
		require.Len(t, paths, 1)
		assert.Equal(t, "Backend Developer", paths[0].Title)
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		careerUC := new(MockCareerUsecase)
		r := newTestRouter(t, careerUC, new(MockResumeUsecase))

		req := httptest.NewRequest(http.MethodPost, "/v1/career/suggest", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, decode(t, w).Success)
		careerUC.AssertNotCalled(t, "SuggestCareerPaths", mock.Anything, mock.Anything)
	})

	t.Run("maps external service failures to 502", func(t *testing.T) {
		careerUC := new(MockCareerUsecase)
		careerUC.On("SuggestCareerPaths", mock.Anything, mock.Anything).
			Return(nil, apperror.ExternalService("AI suggestion service is unavailable", nil))
		r := newTestRouter(t, careerUC, new(MockResumeUsecase))

		body := bytes.NewBufferString(`{"skills":["python"],"experience_years":3}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/career/suggest", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestCareerHandler_GetCareerPath(t *testing.T) {
	t.Run("non-integer id is a 400", func(t *testing.T) {
		r := newTestRouter(t, new(MockCareerUsecase), new(MockResumeUsecase))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/career/paths/abc", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		careerUC := new(MockCareerUsecase)
		careerUC.On("GetCareerPath", mock.Anything, 999).
			Return(nil, apperror.NotFound("Career path not found"))
		r := newTestRouter(t, careerUC, new(MockResumeUsecase))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/career/paths/999", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, decode(t, w).Success)
	})
}

func TestResumeHandler_UploadResume(t *testing.T) {
	t.Run("missing file is a 400", func(t *testing.T) {
		resumeUC := new(MockResumeUsecase)
		r := newTestRouter(t, new(MockCareerUsecase), resumeUC)

		req := httptest.NewRequest(http.MethodPost, "/v1/resume/upload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resumeUC.AssertNotCalled(t, "ProcessResume", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResumeHandler_GetAnalysis(t *testing.T) {
	resumeUC := new(MockResumeUsecase)
	resumeUC.On("GetAnalysis", mock.Anything, "missing-id").
		Return(nil, apperror.NotFound("Resume analysis not found"))
	r := newTestRouter(t, new(MockCareerUsecase), resumeUC)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/resume/missing-id/analysis", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
