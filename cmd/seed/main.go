// Command seed wipes the quiz tables and loads the sample quizzes used for
// local development and demos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"quizhub/internal/config"
	"quizhub/internal/database"
	"quizhub/internal/domain"
	"quizhub/internal/logger"
	"quizhub/internal/repository"
)

func sampleQuizzes() []*domain.Quiz {
	return []*domain.Quiz{
		domain.NewQuiz("JavaScript Fundamentals", []domain.Question{
			{Text: "Is JavaScript a single-threaded language?", Type: domain.QuestionTypeBoolean},
			{Text: "Which keyword is used to declare a constant?", Type: domain.QuestionTypeInput},
			{Text: "Which of the following are valid JS data types?", Type: domain.QuestionTypeCheckbox,
				Options: "String,Boolean,Number,Float"},
			{Text: `What is the output of "2" + 2 in JavaScript?`, Type: domain.QuestionTypeInput},
		}),
		domain.NewQuiz("React.js Basics", []domain.Question{
			{Text: "React uses a Virtual DOM.", Type: domain.QuestionTypeBoolean},
			{Text: "Select built-in React Hooks:", Type: domain.QuestionTypeCheckbox,
				Options: "useState,useEffect,useAngular,useTable"},
		}),
	}
}

func main() {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting seeding")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := seed(ctx, db, log); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Seeding finished")
}

// seed runs the whole load in one transaction so a partial failure leaves
// the tables untouched.
func seed(ctx context.Context, db *sqlx.DB, log *zap.Logger) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
			return
		}
		err = tx.Commit()
	}()

	// Questions go first so the quiz delete never trips the foreign key.
	if _, err = tx.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return fmt.Errorf("failed to clear questions: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM quizzes"); err != nil {
		return fmt.Errorf("failed to clear quizzes: %w", err)
	}
	log.Info("Cleared quiz tables")

	repo := repository.NewQuizDatabaseAdapter(tx)
	for _, quiz := range sampleQuizzes() {
		if err = quiz.Validate(); err != nil {
			return fmt.Errorf("invalid sample quiz %q: %w", quiz.Title, err)
		}
		if err = repo.CreateQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("failed to create quiz %q: %w", quiz.Title, err)
		}
		log.Info("Created quiz", zap.String("title", quiz.Title), zap.Int64("id", quiz.ID))
	}
	return nil
}
