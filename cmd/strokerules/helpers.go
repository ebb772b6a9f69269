package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	"github.com/fdelorme/stroke-rules/internal/dataset"
	"github.com/fdelorme/stroke-rules/internal/mining"
	"github.com/fdelorme/stroke-rules/internal/storage"
)

// databasePath resolves the results database location.
func databasePath() (string, error) {
	if path := viper.GetString("data.database"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "strokerules", "strokerules.db"), nil
}

// openStorage opens the results database and brings its schema up to
// date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// miningConfig builds the miner configuration from viper.
func miningConfig() mining.Config {
	return mining.Config{
		MinSupport:     viper.GetFloat64("mining.min_support"),
		MinConfidence:  viper.GetFloat64("mining.min_confidence"),
		MaxItems:       viper.GetInt("mining.max_items"),
		ProgressWriter: os.Stderr,
	}
}

// prepareOptions builds the preparation policy from viper, falling
// back to the study defaults for anything unset.
func prepareOptions() dataset.Options {
	opts := dataset.DefaultOptions()
	opts.Numeric = dataset.NumericImputation(viper.GetString("data.impute_numeric"))
	opts.Categorical = dataset.CategoricalImputation(viper.GetString("data.impute_categorical"))

	opts.AgeBins = floatSlice("data.bins.age", opts.AgeBins)
	opts.BMIBins = floatSlice("data.bins.bmi", opts.BMIBins)
	opts.GlucoseBins = floatSlice("data.bins.glucose", opts.GlucoseBins)
	return opts
}

// floatSlice reads a list of numbers from viper; YAML may deliver them
// as floats, ints, or strings depending on how they were written.
func floatSlice(key string, fallback []float64) []float64 {
	raw, ok := viper.Get(key).([]any)
	if !ok || len(raw) == 0 {
		return fallback
	}

	out := make([]float64, 0, len(raw))
	for _, v := range raw {
		switch v := v.(type) {
		case float64:
			out = append(out, v)
		case int:
			out = append(out, float64(v))
		case string:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fallback
			}
			out = append(out, f)
		default:
			return fallback
		}
	}
	return out
}
