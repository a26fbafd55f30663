package memory

import (
	"context"
	"sync"

	"skillsync-backend/internal/domain"
)

// careerPathRepository serves the fixed placeholder career-path table. The
// table is seeded once and only ever read afterwards.
type careerPathRepository struct {
	paths []domain.CareerPath
}

func NewCareerPathRepository() domain.CareerPathRepository {
	return &careerPathRepository{paths: seedCareerPaths()}
}

func seedCareerPaths() []domain.CareerPath {
	return []domain.CareerPath{
		{
			ID:              1,
			Title:           "Backend Developer",
			Description:     "Focus on server-side development and database management",
			RequiredSkills:  []string{"Python", "Node.js", "PostgreSQL", "Docker"},
			Companies:       []string{"Atlassian", "GitLab", "Twilio"},
			Suitability:     "",
			AverageSalary:   85000,
			GrowthPotential: "High",
			Difficulty:      "Intermediate",
		},
		{
			ID:              2,
			Title:           "Frontend Developer",
			Description:     "Focus on user interface and user experience",
			RequiredSkills:  []string{"JavaScript", "React", "CSS", "HTML"},
			Companies:       []string{"Vercel", "Figma", "Canva"},
			Suitability:     "",
			AverageSalary:   75000,
			GrowthPotential: "High",
			Difficulty:      "Beginner",
		},
		{
			ID:              3,
			Title:           "Full Stack Developer",
			Description:     "Handle both frontend and backend development",
			RequiredSkills:  []string{"JavaScript", "Python", "React", "Node.js", "PostgreSQL"},
			Companies:       []string{"Airbnb", "Booking.com", "Spotify"},
			Suitability:     "",
			AverageSalary:   95000,
			GrowthPotential: "Very High",
			Difficulty:      "Advanced",
		},
		{
			ID:              4,
			Title:           "ML Engineer",
			Description:     "Focus on machine learning and data science",
			RequiredSkills:  []string{"Python", "TensorFlow", "Pandas", "Scikit-learn"},
			Companies:       []string{"OpenAI", "Hugging Face", "NVIDIA"},
			Suitability:     "",
			AverageSalary:   110000,
			GrowthPotential: "Very High",
			Difficulty:      "Advanced",
		},
	}
}

func (r *careerPathRepository) GetAll(ctx context.Context) ([]domain.CareerPath, error) {
	// copy so callers can't mutate the seed table
	out := make([]domain.CareerPath, len(r.paths))
	copy(out, r.paths)
	return out, nil
}

func (r *careerPathRepository) GetByID(ctx context.Context, id int) (*domain.CareerPath, error) {
	for _, path := range r.paths {
		if path.ID == id {
			found := path
			return &found, nil
		}
	}
	return nil, nil
}

// analysisRepository keeps uploaded resume analyses in memory, keyed by
// file id. Safe for concurrent requests.
type analysisRepository struct {
	mu      sync.RWMutex
	results map[string]*domain.ResumeUploadResponse
}

func NewAnalysisRepository() domain.AnalysisRepository {
	return &analysisRepository{results: make(map[string]*domain.ResumeUploadResponse)}
}

func (r *analysisRepository) Save(ctx context.Context, result *domain.ResumeUploadResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.FileID] = result
	return nil
}

func (r *analysisRepository) GetByFileID(ctx context.Context, fileID string) (*domain.ResumeUploadResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.results[fileID], nil
}
