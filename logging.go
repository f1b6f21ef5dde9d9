package citybed

import (
	"log/slog"

	slogrus "github.com/samber/slog-logrus/v2"
	"github.com/sirupsen/logrus"
)

// defaultLogger builds a log/slog frontend backed by logrus, so call
// sites use the standard-library structured logging API while the actual
// formatting/output pipeline (and anything an operator has already wired
// into logrus — hooks, log shipping, …) stays in logrus.
func defaultLogger() *slog.Logger {
	backend := logrus.New()
	backend.SetLevel(logrus.InfoLevel)
	handler := slogrus.Option{Level: slog.LevelInfo, Logger: backend}.NewLogrusHandler()
	return slog.New(handler)
}
