package models

import "time"

// Setting is a single key/value row. The whole application state fits in two
// fixed keys: the JSON-serialized financial record and the plain credential.
type Setting struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
