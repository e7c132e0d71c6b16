package logger

import (
	"log"

	"go.uber.org/zap"

	"github.com/rotoapp/roto-core/config"
)

var Logger *zap.Logger

// Init initializes the global logger. Production builds log JSON, everything
// else gets the human-readable development encoder.
func Init() {
	var err error
	var logger *zap.Logger
	if config.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	Logger = logger
}

// Sync flushes any buffered log entries.
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// L returns the global logger, initializing it on first use so tests and
// library consumers never hit a nil logger.
func L() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}
