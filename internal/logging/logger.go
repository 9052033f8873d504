package logging

import "go.uber.org/zap"

// NewLogger builds the application logger: JSON output in production,
// human-readable output during development.
func NewLogger(production bool) (*zap.Logger, error) {
	if production {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
