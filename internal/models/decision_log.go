package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DecisionLog is the audit trail written after each decision. Rows are
// best-effort: a failed write never affects the committed decision.
type DecisionLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ReimbursementID int64     `gorm:"index"`
	Action          string
	DecidedBy       int64
	Details         datatypes.JSON
	CreatedAt       time.Time
}
