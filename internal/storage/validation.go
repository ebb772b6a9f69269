package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fdelorme/stroke-rules/internal/model"
)

// Validation errors.
var (
	ErrNilContext  = errors.New("context cannot be nil")
	ErrEmptyString = errors.New("string parameter cannot be empty")
	ErrEmptySlice  = errors.New("slice cannot be empty")
	ErrNotFound    = errors.New("not found")
)

func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

func validateString(s, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return fmt.Errorf("%w: transactions", ErrEmptySlice)
	}
	for i, txn := range transactions {
		if len(txn.Items) == 0 {
			return fmt.Errorf("transaction at index %d has no items", i)
		}
	}
	return nil
}

func validateRules(rules model.Rules) error {
	if len(rules) == 0 {
		return fmt.Errorf("%w: rules", ErrEmptySlice)
	}
	return rules.Validate()
}
