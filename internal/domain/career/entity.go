package career

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the academic/skills profile a user submits for a prediction.
// It is an input value object: stored verbatim alongside the prediction it
// produced, never maintained as its own entity.
type Profile struct {
	UGCourse         string   `json:"ug_course"`
	UGSpecialization string   `json:"ug_specialization,omitempty"`
	Skills           []string `json:"skills,omitempty"`
	Interests        []string `json:"interests,omitempty"`
	UGCGPA           *float64 `json:"ug_cgpa,omitempty"`
	Certifications   []string `json:"certifications,omitempty"`
	ExperienceYears  *int     `json:"experience_years,omitempty"`
}

type Roadmap struct {
	ShortTerm  []string `json:"short_term"`
	MediumTerm []string `json:"medium_term"`
	LongTerm   []string `json:"long_term"`
}

type Path struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"required_skills"`
	Roadmap        Roadmap  `json:"roadmap"`
}

// PredictionPayload is the JSON shape the model is instructed to return for
// a prediction request.
type PredictionPayload struct {
	CareerPaths []Path `json:"career_paths"`
}

type FreeCourse struct {
	Title    string `json:"title"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SuggestionPayload is the JSON shape the model is instructed to return for
// a career detail request.
type SuggestionPayload struct {
	Career         string       `json:"career"`
	RequiredSkills []string     `json:"required_skills"`
	FreeCourses    []FreeCourse `json:"free_courses"`
	Roadmap        Roadmap      `json:"roadmap"`
}

// Prediction is one stored recommendation result. Append-only: created once
// per successful predict call, deleted only by cascading account deletion.
type Prediction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Input     Profile
	Paths     []Path
	CreatedAt time.Time
}

type Suggestion struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Career    string
	Detail    SuggestionPayload
	CreatedAt time.Time
}
