package db

import (
	"encoding/json"
	"fmt"
	"time"
)

// Run is one recorded pipeline run.
type Run struct {
	ID            int64
	URL           string
	Language      string
	WorkerCount   int
	TotalTokens   int
	DistinctWords int
	Duration      time.Duration
	Status        string
	TopWords      []string
	CreatedAt     time.Time
}

// RecordRun inserts a completed run and returns its id.
func (db *DB) RecordRun(run *Run) (int64, error) {
	topWords, err := json.Marshal(run.TopWords)
	if err != nil {
		return 0, fmt.Errorf("failed to encode top words: %w", err)
	}

	status := run.Status
	if status == "" {
		status = "success"
	}

	result, err := db.Exec(`
		INSERT INTO runs (url, language, worker_count, total_tokens, distinct_words, duration_ms, status, top_words)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.URL, run.Language, run.WorkerCount, run.TotalTokens,
		run.DistinctWords, run.Duration.Milliseconds(), status, string(topWords))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, newest first.
func (db *DB) ListRuns(limit int) ([]Run, error) {
	if limit < 1 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT run_id, url, language, worker_count, total_tokens, distinct_words, duration_ms, status, top_words, created_at
		FROM runs
		ORDER BY run_id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run        Run
			durationMS int64
			topWords   string
		)
		if err := rows.Scan(&run.ID, &run.URL, &run.Language, &run.WorkerCount,
			&run.TotalTokens, &run.DistinctWords, &durationMS, &run.Status,
			&topWords, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		if topWords != "" {
			if err := json.Unmarshal([]byte(topWords), &run.TopWords); err != nil {
				return nil, fmt.Errorf("failed to decode top words for run %d: %w", run.ID, err)
			}
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetRunByID fetches a single run.
func (db *DB) GetRunByID(id int64) (*Run, error) {
	var (
		run        Run
		durationMS int64
		topWords   string
	)
	err := db.QueryRow(`
		SELECT run_id, url, language, worker_count, total_tokens, distinct_words, duration_ms, status, top_words, created_at
		FROM runs WHERE run_id = ?`, id).
		Scan(&run.ID, &run.URL, &run.Language, &run.WorkerCount,
			&run.TotalTokens, &run.DistinctWords, &durationMS, &run.Status,
			&topWords, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get run %d: %w", id, err)
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	if topWords != "" {
		if err := json.Unmarshal([]byte(topWords), &run.TopWords); err != nil {
			return nil, fmt.Errorf("failed to decode top words for run %d: %w", id, err)
		}
	}
	return &run, nil
}
