package reader

import (
	"gocolumns/adapters/coercer"
	"gocolumns/internal/config"
)

// ReaderConfig holds configuration for loading tables from disk
type ReaderConfig struct {
	CoercionConfig coercer.CoercionConfig `json:"coercion_config"`
	SheetName      string                 `json:"sheet_name"` // xlsx only; empty selects the first sheet
}

// DefaultReaderConfig returns sensible defaults for table loading
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{
		CoercionConfig: coercer.DefaultCoercionConfig(),
	}
}

// ReaderConfigFrom adapts the environment-driven loader settings
func ReaderConfigFrom(cfg config.LoaderConfig) ReaderConfig {
	sentinels := make([]string, len(cfg.MissingSentinels))
	copy(sentinels, cfg.MissingSentinels)
	return ReaderConfig{
		CoercionConfig: coercer.CoercionConfig{
			NumericThreshold: cfg.NumericThreshold,
			MissingSentinels: sentinels,
			TrimSpace:        cfg.TrimSpace,
		},
		SheetName: cfg.SheetName,
	}
}
