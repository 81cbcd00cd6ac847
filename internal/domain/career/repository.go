package career

import (
	"context"

	"github.com/google/uuid"
)

type PredictionRepository interface {
	Create(ctx context.Context, p Prediction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Prediction, error)
}

type SuggestionRepository interface {
	Create(ctx context.Context, s Suggestion) error
}
