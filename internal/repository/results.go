package repository

import (
	"context"
	"database/sql"

	"github.com/tomz197/focuscatcher/internal/models"
)

// PostgresResultRepository implements session result persistence on PostgreSQL.
type PostgresResultRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresResultRepository creates a repository using the given connection.
func NewPostgresResultRepository(db *sql.DB) *PostgresResultRepository {
	return &PostgresResultRepository{DB: db}
}

// SaveResult stores one uploaded session. Re-uploads of the same session
// ID are ignored so retrying clients never duplicate rows.
func (r *PostgresResultRepository) SaveResult(ctx context.Context, res models.Result) error {
	// Anonymous uploads carry no login; store NULL to satisfy the FK.
	login := sql.NullString{String: res.Login, Valid: res.Login != ""}

	_, err := r.DB.ExecContext(
		ctx,
		`INSERT INTO results
		    (id, login, level, correct_catches, incorrect_catches, accuracy, avg_reaction_ms, score, played_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO NOTHING`,
		res.ID, login, res.Level, res.Correct, res.Incorrect,
		res.Accuracy, res.AvgReactionMs, res.Score, res.PlayedAt,
	)
	return err
}

// LevelSummaries aggregates all uploaded results per level.
func (r *PostgresResultRepository) LevelSummaries(ctx context.Context) ([]models.LevelSummary, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT level, COUNT(*), MAX(accuracy), MIN(avg_reaction_ms)
		 FROM results GROUP BY level ORDER BY level`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []models.LevelSummary
	for rows.Next() {
		var s models.LevelSummary
		if err := rows.Scan(&s.Level, &s.Plays, &s.BestAccuracy, &s.BestReactionMs); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ResultsByLogin returns a user's uploaded sessions, newest first.
func (r *PostgresResultRepository) ResultsByLogin(ctx context.Context, login string) ([]models.Result, error) {
	rows, err := r.DB.QueryContext(
		ctx,
		`SELECT id, login, level, correct_catches, incorrect_catches, accuracy, avg_reaction_ms, score, played_at
		 FROM results WHERE login = $1 ORDER BY played_at DESC`,
		login,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var res models.Result
		var resLogin sql.NullString
		if err := rows.Scan(&res.ID, &resLogin, &res.Level, &res.Correct, &res.Incorrect,
			&res.Accuracy, &res.AvgReactionMs, &res.Score, &res.PlayedAt); err != nil {
			return nil, err
		}
		res.Login = resLogin.String
		results = append(results, res)
	}
	return results, rows.Err()
}
