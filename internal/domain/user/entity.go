package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Name         string
	PasswordHash string
	GoogleSub    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
