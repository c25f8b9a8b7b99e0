package utils

import "go.uber.org/zap"

// NewLogger builds the service logger for env: JSON in production, console
// output in development and a no-op logger under test.
func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case "production":
		return zap.NewProduction()
	case "test":
		return zap.NewNop(), nil
	default:
		return zap.NewDevelopment()
	}
}
