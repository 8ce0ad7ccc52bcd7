// Package log is a thin zerolog-backed facade over the teacher's
// hand-rolled colored logger, keeping its section-banner flavor while
// giving every package structured, leveled logging.
package log

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}).
	With().Timestamp().Logger()

// SetLevel sets the minimum log level for the default logger.
func SetLevel(level zerolog.Level) {
	base = base.Level(level)
}

// Named returns a child logger tagged with a component name, mirroring
// how the teacher's packages called the package-level logger directly;
// callers hold onto the returned logger instead of a global.
func Named(component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// Debug logs a debug message on the default logger.
func Debug(format string, args ...interface{}) {
	base.Debug().Msg(fmt.Sprintf(format, args...))
}

// Info logs an informational message on the default logger.
func Info(format string, args ...interface{}) {
	base.Info().Msg(fmt.Sprintf(format, args...))
}

// Warn logs a warning message on the default logger.
func Warn(format string, args ...interface{}) {
	base.Warn().Msg(fmt.Sprintf(format, args...))
}

// Error logs an error message on the default logger.
func Error(format string, args ...interface{}) {
	base.Error().Msg(fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message and exits, matching the teacher's Fatal.
func Fatal(format string, args ...interface{}) {
	base.Fatal().Msg(fmt.Sprintf(format, args...))
}

// Section prints a banner-style section header, preserved from the
// teacher's logger.Section for demo/CLI output.
func Section(title string) {
	border := "═══════════════════════════════════════════════════════════"
	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║ %-61s ║\n", title)
	fmt.Printf("╚%s╝\n\n", border)
}

// Banner prints the application banner for the demo entrypoint.
func Banner(title, version string) {
	fmt.Printf("\n%s — version %s — %s\n\n", title, version, time.Now().Format("2006-01-02"))
}
