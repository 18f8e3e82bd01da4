// Package logger builds the application logger.
package logger

import "go.uber.org/zap"

// New returns a sugared zap logger. Debug mode uses the human-readable
// development config, otherwise production JSON output.
func New(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return log.Sugar(), nil
}
