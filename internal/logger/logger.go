package logger

import (
	"log"

	"go.uber.org/zap"
)

// L is the shared application logger. It defaults to a no-op logger so
// package code (and tests) can log before Init runs.
var L = zap.NewNop().Sugar()

func Init() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	L = logger.Sugar()
}

// Sync flushes buffered log entries; call on shutdown.
func Sync() {
	_ = L.Sync()
}
