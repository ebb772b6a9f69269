package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// SaveRun stores one mining run and its rules, returning the run ID.
// An infinite conviction is stored as NULL and restored as +Inf on
// read; SQLite REALs cannot round-trip infinities reliably.
func (s *SQLiteStorage) SaveRun(ctx context.Context, datasetID int64, minSupport, minConfidence float64, rules model.Rules) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateRules(rules); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (dataset_id, min_support, min_confidence, rule_count) VALUES (?, ?, ?, ?)`,
		datasetID, minSupport, minConfidence, len(rules))
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rules (run_id, antecedent, consequent,
			support, confidence, lift, leverage, conviction,
			jaccard, certainty, information)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, rule := range rules {
		conviction := sql.NullFloat64{Float64: rule.Metrics.Conviction, Valid: true}
		if math.IsInf(rule.Metrics.Conviction, 1) {
			conviction.Valid = false
		}

		_, err := stmt.ExecContext(ctx,
			runID,
			rule.Antecedent.Key(),
			rule.Consequent.Key(),
			rule.Metrics.Support,
			rule.Metrics.Confidence,
			rule.Metrics.Lift,
			rule.Metrics.Leverage,
			conviction,
			rule.Metrics.Jaccard,
			rule.Metrics.Certainty,
			rule.Metrics.Information,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to insert rule %s: %w", rule, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	slog.Debug("saved run", "id", runID, "rules", len(rules))
	return runID, nil
}

// LatestRun returns the most recent mining run, or ErrNotFound when no
// run has been stored yet.
func (s *SQLiteStorage) LatestRun(ctx context.Context) (*Run, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, dataset_id, min_support, min_confidence, rule_count, created_at
		FROM runs
		ORDER BY id DESC
		LIMIT 1`

	var r Run
	err := s.db.QueryRowContext(ctx, query).Scan(
		&r.ID, &r.DatasetID, &r.MinSupport, &r.MinConfidence, &r.RuleCount, &r.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no mining runs stored: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest run: %w", err)
	}

	return &r, nil
}

// GetRules returns every rule of a run in canonical order.
func (s *SQLiteStorage) GetRules(ctx context.Context, runID int64) (model.Rules, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT antecedent, consequent,
			support, confidence, lift, leverage, conviction,
			jaccard, certainty, information
		FROM rules
		WHERE run_id = ?
		ORDER BY antecedent, consequent`

	rows, err := s.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules model.Rules
	for rows.Next() {
		var antecedent, consequent string
		var conviction sql.NullFloat64
		var m model.Metrics

		err := rows.Scan(&antecedent, &consequent,
			&m.Support, &m.Confidence, &m.Lift, &m.Leverage, &conviction,
			&m.Jaccard, &m.Certainty, &m.Information)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}

		if conviction.Valid {
			m.Conviction = conviction.Float64
		} else {
			m.Conviction = math.Inf(1)
		}

		rules = append(rules, model.Rule{
			Antecedent: model.Itemset{Items: model.ParseItems(antecedent)},
			Consequent: model.Itemset{Items: model.ParseItems(consequent)},
			Metrics:    m,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rules: %w", err)
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("run %d: %w", runID, ErrNotFound)
	}
	return rules, nil
}
