package usecase_test

import (
	"context"
	"errors"
	"testing"

	"skillsync-backend/internal/domain"
	"skillsync-backend/internal/extractor"
	"skillsync-backend/internal/usecase"
	"skillsync-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

type MockAnalysisRepo struct {
	mock.Mock
}

func (m *MockAnalysisRepo) Save(ctx context.Context, result *domain.ResumeUploadResponse) error {
	return m.Called(ctx, result).Error(0)
}

func (m *MockAnalysisRepo) GetByFileID(ctx context.Context, fileID string) (*domain.ResumeUploadResponse, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeUploadResponse), args.Error(1)
}

func TestProcessResume(t *testing.T) {
	t.Run("Extracted text flows through the analyzer into the store", func(t *testing.T) {
		mockText := new(MockTextExtractor)
		mockText.On("ExtractText", "/tmp/abc.pdf").
			Return("Senior developer, 6 years of experience. Skills: Python, Docker", nil)

		mockRepo := new(MockAnalysisRepo)
		mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*domain.ResumeUploadResponse")).Return(nil)

		uc := usecase.NewResumeUsecase(mockText, extractor.New(), mockRepo)
		result, err := uc.ProcessResume(context.Background(), "abc", "resume.pdf", "/tmp/abc.pdf")
		require.NoError(t, err)

		assert.Equal(t, "abc", result.FileID)
		assert.Equal(t, "resume.pdf", result.Filename)
		assert.False(t, result.UploadedAt.IsZero())
		require.NotNil(t, result.Analysis)
		assert.Equal(t, 6, result.Analysis.ExperienceYears)
		assert.Contains(t, result.Analysis.Skills, "Python")
		assert.Contains(t, result.Analysis.Skills, "Docker")
		mockRepo.AssertCalled(t, "Save", mock.Anything, result)
	})

	t.Run("Text extraction failure maps to ExtractionError", func(t *testing.T) {
		mockText := new(MockTextExtractor)
		mockText.On("ExtractText", mock.Anything).Return("", errors.New("broken pdf"))

		uc := usecase.NewResumeUsecase(mockText, extractor.New(), new(MockAnalysisRepo))
		_, err := uc.ProcessResume(context.Background(), "abc", "resume.pdf", "/tmp/abc.pdf")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindExtraction))
	})

	t.Run("Empty extracted text maps to ExtractionError", func(t *testing.T) {
		mockText := new(MockTextExtractor)
		mockText.On("ExtractText", mock.Anything).Return("   ", nil)

		uc := usecase.NewResumeUsecase(mockText, extractor.New(), new(MockAnalysisRepo))
		_, err := uc.ProcessResume(context.Background(), "abc", "resume.pdf", "/tmp/abc.pdf")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindExtraction))
	})
}

func TestGetAnalysis(t *testing.T) {
	t.Run("Unknown file id maps to NotFound", func(t *testing.T) {
		mockRepo := new(MockAnalysisRepo)
		mockRepo.On("GetByFileID", mock.Anything, "missing").Return(nil, nil)

		uc := usecase.NewResumeUsecase(new(MockTextExtractor), extractor.New(), mockRepo)
		_, err := uc.GetAnalysis(context.Background(), "missing")
		require.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})

	t.Run("Stored analysis round-trips", func(t *testing.T) {
		stored := &domain.ResumeUploadResponse{FileID: "abc", Filename: "resume.pdf"}
		mockRepo := new(MockAnalysisRepo)
		mockRepo.On("GetByFileID", mock.Anything, "abc").Return(stored, nil)

		uc := usecase.NewResumeUsecase(new(MockTextExtractor), extractor.New(), mockRepo)
		result, err := uc.GetAnalysis(context.Background(), "abc")
		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})
}
