package models

import (
	"time"
)

// Setting is a single persisted key/value row. The only key in use today is
// the AI service credential; everything else in the system is
// process-lifetime memory.
type Setting struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
