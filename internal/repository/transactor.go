package repository

import (
	"context"

	"gorm.io/gorm"
)

// Transactor opens database transactions for multi-row operations
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// NewRepositories binds all repositories to db
func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Users:    NewUserRepository(db),
		Athletes: NewAthleteRepository(db),
		Teams:    NewTeamRepository(db),
	}
}

// WithinTransaction runs fn inside a transaction; any error rolls it back
func (t *Transactor) WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error {
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
