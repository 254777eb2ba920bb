package app

import (
	"github.com/pressplay/gamestore/internal/config"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
