// Package models defines the data structures shared by the API server layers.
package models

import "time"

// User is a registered player account.
type User struct {
	// ID is the unique identifier for the user.
	ID string
	// Login is the username chosen by the player.
	Login string
	// PasswordHash is the bcrypt hash of the player's password.
	PasswordHash []byte
	// CreatedAt is when the account was registered.
	CreatedAt time.Time
}

// Result is one uploaded game session.
type Result struct {
	// ID is the client-generated session identifier.
	ID string `json:"session_id"`
	// Login is the account the result belongs to, empty for anonymous uploads.
	Login string `json:"login,omitempty"`
	// Level is the level number that was played.
	Level int `json:"level"`
	// Correct is the number of targets caught.
	Correct int `json:"correct_catches"`
	// Incorrect is the number of wrong catches and empty-space misses.
	Incorrect int `json:"incorrect_catches"`
	// Accuracy is the catch accuracy in percent.
	Accuracy float64 `json:"accuracy"`
	// AvgReactionMs is the mean reaction time in milliseconds.
	AvgReactionMs int64 `json:"avg_reaction_ms"`
	// Score is the final session score.
	Score int `json:"score"`
	// PlayedAt is when the session finished.
	PlayedAt time.Time `json:"played_at"`
}

// LevelSummary aggregates uploaded results for one level.
type LevelSummary struct {
	// Level is the level number.
	Level int `json:"level"`
	// Plays is how many sessions were uploaded for the level.
	Plays int `json:"plays"`
	// BestAccuracy is the highest accuracy seen, in percent.
	BestAccuracy float64 `json:"best_accuracy"`
	// BestReactionMs is the fastest average reaction in milliseconds.
	BestReactionMs int64 `json:"best_reaction_ms"`
}
