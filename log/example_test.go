package log_test

import (
	"log/slog"
	"os"

	"github.com/ardnew/stache/log"
)

func Example() {
	logger := log.Make(os.Stdout,
		log.WithFormat(log.FormatText),
		log.WithTimeLayout("none"))

	logger.Info("template rendered", slog.String("path", "views/home.html"))
	logger.Debug("suppressed below info")
	// Output: level=INFO msg="template rendered" path=views/home.html
}
