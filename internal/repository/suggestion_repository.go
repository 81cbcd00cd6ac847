package repository

import (
	"context"
	"encoding/json"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"
)

type PostgresSuggestionRepository struct {
	db database.DB
}

func NewPostgresSuggestionRepository(db database.DB) *PostgresSuggestionRepository {
	return &PostgresSuggestionRepository{db: db}
}

func (r *PostgresSuggestionRepository) Create(ctx context.Context, s career.Suggestion) error {
	detail, err := json.Marshal(s.Detail)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO career_suggestions (id, user_id, career, suggestion, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.Career, detail, s.CreatedAt,
	)
	return err
}

var _ career.SuggestionRepository = (*PostgresSuggestionRepository)(nil)
