package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/code-100-precent/LingStamp/pkg/config"
	"github.com/code-100-precent/LingStamp/pkg/logger"
	"go.uber.org/zap"
)

// Banner is printed at the start of an interactive session.
const Banner = `LingStamp v1.0
====================`

// LogConfigInfo Print loaded configuration information
func LogConfigInfo(cfg *config.Config) {
	logger.Debug("system config load finished")
	logger.Debug("global config",
		zap.String("mode", cfg.Mode),
	)

	logger.Debug("log config",
		zap.String("log_level", cfg.Log.Level),
		zap.String("log_filename", cfg.Log.Filename),
		zap.Int("log_max_size", cfg.Log.MaxSize),
		zap.Int("log_max_age", cfg.Log.MaxAge),
		zap.Int("log_max_backups", cfg.Log.MaxBackups),
		zap.Bool("log_daily", cfg.Log.Daily),
		zap.Bool("log_console", cfg.Log.Console),
	)

	logger.Debug("stamp config",
		zap.Strings("formats", cfg.Formats.Extensions()),
		zap.Int("quality", cfg.Quality),
		zap.String("font", cfg.FontPath),
	)
}

// PrintBanner writes banner line by line, cycling through colors when
// colored is set.
func PrintBanner(w io.Writer, banner string, colored bool) {
	colors := []string{
		"\x1b[38;5;165m",
		"\x1b[38;5;189m",
		"\x1b[38;5;207m",
		"\x1b[38;5;219m",
		"\x1b[38;5;225m",
		"\x1b[38;5;231m",
	}

	for i, line := range strings.Split(banner, "\n") {
		if !colored {
			fmt.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, colors[i%len(colors)]+line+"\x1b[0m")
	}
}
