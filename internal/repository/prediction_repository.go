package repository

import (
	"context"
	"encoding/json"

	"career-compass/internal/database"
	"career-compass/internal/domain/career"

	"github.com/google/uuid"
)

type PostgresPredictionRepository struct {
	db database.DB
}

func NewPostgresPredictionRepository(db database.DB) *PostgresPredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

func (r *PostgresPredictionRepository) Create(ctx context.Context, p career.Prediction) error {
	input, err := json.Marshal(p.Input)
	if err != nil {
		return err
	}
	paths, err := json.Marshal(career.PredictionPayload{CareerPaths: p.Paths})
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO career_predictions (id, user_id, user_input, prediction, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		p.ID, p.UserID, input, paths, p.CreatedAt,
	)
	return err
}

func (r *PostgresPredictionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]career.Prediction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, user_input, prediction, created_at
		 FROM career_predictions
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]career.Prediction, 0)
	for rows.Next() {
		var (
			p          career.Prediction
			inputRaw   []byte
			predictRaw []byte
		)
		if err := rows.Scan(&p.ID, &p.UserID, &inputRaw, &predictRaw, &p.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(inputRaw, &p.Input); err != nil {
			return nil, err
		}
		var payload career.PredictionPayload
		if err := json.Unmarshal(predictRaw, &payload); err != nil {
			return nil, err
		}
		p.Paths = payload.CareerPaths
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ career.PredictionRepository = (*PostgresPredictionRepository)(nil)
