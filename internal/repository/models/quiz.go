package models

import (
	"database/sql"
	"time"
)

// Quiz is the quizzes table row.
type Quiz struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Question is the questions table row. Options is NULL for non-checkbox
// questions; checkbox questions store their choices comma-joined.
type Question struct {
	ID        int64          `db:"id"`
	QuizID    int64          `db:"quiz_id"`
	Text      string         `db:"text"`
	Type      string         `db:"qtype"`
	Options   sql.NullString `db:"options"`
	Position  int            `db:"position"`
	CreatedAt time.Time      `db:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}
