package models

import (
	"time"

	"github.com/google/uuid"
)

type TeamModel struct {
	TeamId    uuid.UUID `db:"team_id" json:"teamId"`
	Name      string    `db:"name" json:"name" validate:"required,max=100"`
	Sport     Sport     `db:"sport" json:"sport" validate:"required,sport"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
