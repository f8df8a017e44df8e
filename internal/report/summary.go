// Package report builds and renders the end-of-session summary.
package report

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/strrl/termclock/internal/db"
	"github.com/strrl/termclock/pkg/models"
)

// Stats are the aggregates over a session's runs.
type Stats struct {
	Count    int
	Total    time.Duration
	Longest  time.Duration
	Shortest time.Duration
	Average  time.Duration

	// Breaks is the wall clock time between consecutive runs. Negative
	// gaps, which only a clock adjustment can produce, count as zero.
	Breaks time.Duration
}

// Summary is everything the end-of-session report shows.
type Summary struct {
	SessionID string
	Project   string
	Runs      []models.Run
	Stats     Stats
}

// Build summarizes runs. Aggregates are computed in DuckDB; if the
// database is unavailable they are computed in process instead.
func Build(ctx context.Context, logger *slog.Logger, project string, runs []models.Run) Summary {
	s := Summary{
		SessionID: uuid.NewString(),
		Project:   project,
		Runs:      runs,
	}

	database, err := db.GetDB()
	if err == nil {
		s.Stats, err = Aggregate(ctx, database, runs)
	}
	if err != nil {
		logger.Warn("falling back to in-process aggregation", "error", err)
		s.Stats = aggregateLocal(runs)
	}
	return s
}

const aggregateQuery = `
	WITH ordered AS (
		SELECT
			duration_ns,
			start_ns - LAG(end_ns) OVER (ORDER BY seq) AS gap_ns
		FROM session_runs
	)
	SELECT
		COUNT(*),
		CAST(COALESCE(SUM(duration_ns), 0) AS BIGINT),
		CAST(COALESCE(MAX(duration_ns), 0) AS BIGINT),
		CAST(COALESCE(MIN(duration_ns), 0) AS BIGINT),
		CAST(COALESCE(ROUND(AVG(duration_ns)), 0) AS BIGINT),
		CAST(COALESCE(SUM(CASE WHEN gap_ns > 0 THEN gap_ns ELSE 0 END), 0) AS BIGINT)
	FROM ordered
`

// Aggregate loads runs into a temporary table on database and computes
// the session stats with SQL. The table is replaced on every call, so a
// pooled connection never carries rows from an earlier session.
func Aggregate(ctx context.Context, database *sql.DB, runs []models.Run) (Stats, error) {
	conn, err := database.Conn(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, `
		CREATE OR REPLACE TEMP TABLE session_runs (
			seq INTEGER,
			start_ns BIGINT,
			end_ns BIGINT,
			duration_ns BIGINT
		)`); err != nil {
		return Stats{}, fmt.Errorf("failed to create runs table: %w", err)
	}

	for i, r := range runs {
		if _, err := conn.ExecContext(ctx,
			"INSERT INTO session_runs VALUES (?, ?, ?, ?)",
			i, r.Start.UnixNano(), r.End.UnixNano(), int64(r.Duration),
		); err != nil {
			return Stats{}, fmt.Errorf("failed to insert run %d: %w", i+1, err)
		}
	}

	var count, total, longest, shortest, average, gaps int64
	if err := conn.QueryRowContext(ctx, aggregateQuery).Scan(
		&count, &total, &longest, &shortest, &average, &gaps,
	); err != nil {
		return Stats{}, fmt.Errorf("failed to execute aggregate query: %w", err)
	}

	return Stats{
		Count:    int(count),
		Total:    time.Duration(total),
		Longest:  time.Duration(longest),
		Shortest: time.Duration(shortest),
		Average:  time.Duration(average),
		Breaks:   time.Duration(gaps),
	}, nil
}

func aggregateLocal(runs []models.Run) Stats {
	var st Stats
	st.Count = len(runs)
	for i, r := range runs {
		st.Total += r.Duration
		if i == 0 || r.Duration > st.Longest {
			st.Longest = r.Duration
		}
		if i == 0 || r.Duration < st.Shortest {
			st.Shortest = r.Duration
		}
		if i > 0 {
			if gap := r.Start.Sub(runs[i-1].End); gap > 0 {
				st.Breaks += gap
			}
		}
	}
	if st.Count > 0 {
		st.Average = time.Duration(math.Round(float64(st.Total) / float64(st.Count)))
	}
	return st
}
