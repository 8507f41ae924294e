package config

import (
	"os"

	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. Engine diagnostics
// (price-resolution misses, span parse fallbacks) go through it so
// operators can review bad catalog entries without the quotation failing.
var Logger = zap.NewNop()

func InitLogger() error {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("LOG_MODE") == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Logger = l
	return nil
}
