package domain

import (
	"context"
	"time"
)

// ResumeAnalysis holds the structured facts extracted from one resume.
// Produced fresh per parse call and never mutated afterwards.
type ResumeAnalysis struct {
	Skills          []string `json:"skills"`
	JobTitles       []string `json:"job_titles"`
	Education       []string `json:"education"` // at most 3 entries, first-seen order
	ExperienceYears int      `json:"experience_years"`
	Languages       []string `json:"languages"`
	Certifications  []string `json:"certifications"`
}

type ResumeUploadResponse struct {
	FileID     string          `json:"file_id"`
	Filename   string          `json:"filename"`
	Analysis   *ResumeAnalysis `json:"analysis"`
	UploadedAt time.Time       `json:"uploaded_at"`
}

// Analyzer is the resume extraction engine: raw page-concatenated text in,
// structured facts out. Absence of matches is data, not an error; the only
// failure mode is empty input.
type Analyzer interface {
	Analyze(text string) (*ResumeAnalysis, error)
}

// TextExtractor converts an uploaded document on disk into plain text.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

type AnalysisRepository interface {
	Save(ctx context.Context, result *ResumeUploadResponse) error
	GetByFileID(ctx context.Context, fileID string) (*ResumeUploadResponse, error)
}

type ResumeUsecase interface {
	ProcessResume(ctx context.Context, fileID, filename, path string) (*ResumeUploadResponse, error)
	GetAnalysis(ctx context.Context, fileID string) (*ResumeUploadResponse, error)
}
