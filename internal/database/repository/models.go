package repository

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx so repos can join a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Question represents a trivia question row with its hints and synonyms.
type Question struct {
	ID       string
	Position int
	Prompt   string
	Answer   string
	Hints    []string
	Synonyms []string
}

// Word represents a word-search target.
type Word struct {
	ID       string
	Position int
	Word     string
}

// Memory represents a timeline item. Position is its place in the reference order.
type Memory struct {
	ID          string
	Position    int
	Emoji       string
	Title       string
	Description string
	Date        string
}
