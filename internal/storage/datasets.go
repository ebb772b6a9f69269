package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// SaveDataset stores a prepared transaction snapshot and returns its ID.
func (s *SQLiteStorage) SaveDataset(ctx context.Context, source string, transactions []model.Transaction) (int64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}
	if err := validateString(source, "source"); err != nil {
		return 0, err
	}
	if err := validateTransactions(transactions); err != nil {
		return 0, err
	}

	distinct := make(map[string]struct{})
	for _, txn := range transactions {
		for _, item := range txn.Items {
			distinct[item] = struct{}{}
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO datasets (source, rows, items) VALUES (?, ?, ?)`,
		source, len(transactions), len(distinct))
	if err != nil {
		return 0, fmt.Errorf("failed to insert dataset: %w", err)
	}

	datasetID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get dataset id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO transactions (dataset_id, row_index, items) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if _, err := stmt.ExecContext(ctx, datasetID, txn.Row, txn.Key()); err != nil {
			return 0, fmt.Errorf("failed to insert transaction row %d: %w", txn.Row, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit dataset: %w", err)
	}

	slog.Debug("saved dataset", "id", datasetID, "rows", len(transactions), "items", len(distinct))
	return datasetID, nil
}

// LatestDataset returns the most recently saved dataset, or ErrNotFound
// when the store is empty.
func (s *SQLiteStorage) LatestDataset(ctx context.Context) (*Dataset, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, source, rows, items, created_at
		FROM datasets
		ORDER BY id DESC
		LIMIT 1`

	var d Dataset
	err := s.db.QueryRowContext(ctx, query).Scan(&d.ID, &d.Source, &d.Rows, &d.Items, &d.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no datasets stored: %w", ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query latest dataset: %w", err)
	}

	return &d, nil
}

// GetTransactions returns the transactions of a stored dataset in row
// order.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, datasetID int64) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT row_index, items
		FROM transactions
		WHERE dataset_id = ?
		ORDER BY row_index`

	rows, err := s.db.QueryContext(ctx, query, datasetID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var row int
		var items string
		if err := rows.Scan(&row, &items); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, model.Transaction{Row: row, Items: model.ParseItems(items)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transactions: %w", err)
	}

	if len(transactions) == 0 {
		return nil, fmt.Errorf("dataset %d: %w", datasetID, ErrNotFound)
	}
	return transactions, nil
}
