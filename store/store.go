// Package store is the persistence layer. Every operation goes through an
// explicit Store instance so tests can run against an isolated database.
package store

import (
	"strings"

	"gorm.io/gorm"
)

// Store wraps the database handle.
type Store struct {
	db *gorm.DB
}

// New creates a Store over an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// isUniqueConstraintError detects unique-constraint violations across the
// sqlite and postgres drivers, which report them with different messages.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
