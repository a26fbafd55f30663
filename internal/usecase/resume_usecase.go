package usecase

import (
	"context"
	"time"

	"skillsync-backend/internal/domain"
	"skillsync-backend/pkg/apperror"
)

type resumeUsecase struct {
	textExtractor domain.TextExtractor
	analyzer      domain.Analyzer
	repo          domain.AnalysisRepository
}

func NewResumeUsecase(textExtractor domain.TextExtractor, analyzer domain.Analyzer, repo domain.AnalysisRepository) domain.ResumeUsecase {
	return &resumeUsecase{
		textExtractor: textExtractor,
		analyzer:      analyzer,
		repo:          repo,
	}
}

// ProcessResume turns an uploaded file into a stored analysis: extract text,
// run the extraction engine, persist the result keyed by file id.
func (u *resumeUsecase) ProcessResume(ctx context.Context, fileID, filename, path string) (*domain.ResumeUploadResponse, error) {
	text, err := u.textExtractor.ExtractText(path)
	if err != nil {
		return nil, apperror.Extraction("Could not extract text from the uploaded file")
	}

	analysis, err := u.analyzer.Analyze(text)
	if err != nil {
		return nil, err
	}

	result := &domain.ResumeUploadResponse{
		FileID:     fileID,
		Filename:   filename,
		Analysis:   analysis,
		UploadedAt: time.Now().UTC(),
	}
	if err := u.repo.Save(ctx, result); err != nil {
		return nil, apperror.Internal(err)
	}
	return result, nil
}

func (u *resumeUsecase) GetAnalysis(ctx context.Context, fileID string) (*domain.ResumeUploadResponse, error) {
	result, err := u.repo.GetByFileID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, apperror.NotFound("Resume analysis not found")
	}
	return result, nil
}
