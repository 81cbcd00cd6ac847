package dto

import (
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/career"
)

type PredictionResponse struct {
	ID          uuid.UUID     `json:"id"`
	CareerPaths []career.Path `json:"career_paths"`
	CreatedAt   time.Time     `json:"created_at"`
}

type PredictionHistoryItem struct {
	ID          uuid.UUID      `json:"id"`
	UserInput   career.Profile `json:"user_input"`
	CareerPaths []career.Path  `json:"career_paths"`
	CreatedAt   time.Time      `json:"created_at"`
}

type SuggestionResponse struct {
	ID             uuid.UUID           `json:"id"`
	Career         string              `json:"career"`
	RequiredSkills []string            `json:"required_skills"`
	FreeCourses    []career.FreeCourse `json:"free_courses"`
	Roadmap        career.Roadmap      `json:"roadmap"`
	CreatedAt      time.Time           `json:"created_at"`
}

func NewPredictionResponse(p career.Prediction) PredictionResponse {
	return PredictionResponse{ID: p.ID, CareerPaths: p.Paths, CreatedAt: p.CreatedAt}
}

func NewPredictionHistory(items []career.Prediction) []PredictionHistoryItem {
	out := make([]PredictionHistoryItem, 0, len(items))
	for _, p := range items {
		out = append(out, PredictionHistoryItem{
			ID:          p.ID,
			UserInput:   p.Input,
			CareerPaths: p.Paths,
			CreatedAt:   p.CreatedAt,
		})
	}
	return out
}

func NewSuggestionResponse(s career.Suggestion) SuggestionResponse {
	return SuggestionResponse{
		ID:             s.ID,
		Career:         s.Detail.Career,
		RequiredSkills: s.Detail.RequiredSkills,
		FreeCourses:    s.Detail.FreeCourses,
		Roadmap:        s.Detail.Roadmap,
		CreatedAt:      s.CreatedAt,
	}
}
