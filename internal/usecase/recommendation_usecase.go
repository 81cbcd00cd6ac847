package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/domain/career"
	"career-compass/internal/infrastructure/completion"
	"career-compass/internal/pkg/llmjson"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrExtractionFailed = errors.New("failed to parse JSON from completion response")
)

type RecommendationUsecase interface {
	Predict(ctx context.Context, userID uuid.UUID, p career.Profile) (career.Prediction, error)
	Detail(ctx context.Context, userID uuid.UUID, careerName string) (career.Suggestion, error)
	History(ctx context.Context, userID uuid.UUID) ([]career.Prediction, error)
}

// Recommendation drives the predict flow: build prompt, call the completion
// provider, extract the JSON payload, persist. Nothing is stored unless the
// full expected shape came back.
type Recommendation struct {
	completions completion.Client
	predictions career.PredictionRepository
	suggestions career.SuggestionRepository

	now func() time.Time
}

func NewRecommendationUsecase(
	completions completion.Client,
	predictions career.PredictionRepository,
	suggestions career.SuggestionRepository,
) *Recommendation {
	return &Recommendation{
		completions: completions,
		predictions: predictions,
		suggestions: suggestions,
		now:         time.Now,
	}
}

func (r *Recommendation) Predict(ctx context.Context, userID uuid.UUID, p career.Profile) (career.Prediction, error) {
	if strings.TrimSpace(p.UGCourse) == "" {
		return career.Prediction{}, fmt.Errorf("%w: ug_course is required", ErrInvalidInput)
	}

	raw, err := r.completions.Complete(ctx, predictionSystemPrompt, predictionPrompt(p))
	if err != nil {
		return career.Prediction{}, err
	}

	var payload career.PredictionPayload
	if err := llmjson.ExtractInto(raw, &payload); err != nil {
		return career.Prediction{}, ErrExtractionFailed
	}
	if len(payload.CareerPaths) == 0 {
		return career.Prediction{}, ErrExtractionFailed
	}

	pred := career.Prediction{
		ID:        uuid.New(),
		UserID:    userID,
		Input:     p,
		Paths:     payload.CareerPaths,
		CreatedAt: r.now().UTC(),
	}
	if err := r.predictions.Create(ctx, pred); err != nil {
		return career.Prediction{}, fmt.Errorf("persist prediction: %w", err)
	}
	return pred, nil
}

func (r *Recommendation) Detail(ctx context.Context, userID uuid.UUID, careerName string) (career.Suggestion, error) {
	careerName = strings.TrimSpace(careerName)
	if careerName == "" {
		return career.Suggestion{}, fmt.Errorf("%w: career field is required", ErrInvalidInput)
	}

	raw, err := r.completions.Complete(ctx, detailSystemPrompt, detailPrompt(careerName))
	if err != nil {
		return career.Suggestion{}, err
	}

	var payload career.SuggestionPayload
	if err := llmjson.ExtractInto(raw, &payload); err != nil {
		return career.Suggestion{}, ErrExtractionFailed
	}
	if payload.Career == "" {
		return career.Suggestion{}, ErrExtractionFailed
	}

	sug := career.Suggestion{
		ID:        uuid.New(),
		UserID:    userID,
		Career:    careerName,
		Detail:    payload,
		CreatedAt: r.now().UTC(),
	}
	if err := r.suggestions.Create(ctx, sug); err != nil {
		return career.Suggestion{}, fmt.Errorf("persist suggestion: %w", err)
	}
	return sug, nil
}

func (r *Recommendation) History(ctx context.Context, userID uuid.UUID) ([]career.Prediction, error) {
	return r.predictions.ListByUser(ctx, userID)
}

var _ RecommendationUsecase = (*Recommendation)(nil)
