package logging

import (
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var logLevelMatches = map[string]zerolog.Level{
	"NONE":  zerolog.Disabled,
	"TRACE": zerolog.TraceLevel,
	"DEBUG": zerolog.DebugLevel,
	"INFO":  zerolog.InfoLevel,
	"WARN":  zerolog.WarnLevel,
	"ERROR": zerolog.ErrorLevel,
}

// ParseLevel maps a level name to a zerolog level, defaulting to warn.
func ParseLevel(level string) zerolog.Level {
	if l, ok := logLevelMatches[strings.ToUpper(level)]; ok {
		return l
	}
	return zerolog.WarnLevel
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) && runtime.GOOS != "windows"
}

// Setup configures the global logger. Output goes to stderr so stdout
// only carries drawn art; on a terminal a console writer is used.
func Setup(level string) {
	var out io.Writer = os.Stderr
	if isTerminal(os.Stderr) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}
	SetupWriter(level, out)
}

// SetupWriter configures the global logger to write to out.
func SetupWriter(level string, out io.Writer) {
	zerolog.SetGlobalLevel(ParseLevel(level))
	log.Logger = zerolog.New(out).With().Timestamp().Logger()
}

// Enabled checks if a specific logging level is enabled.
func Enabled(level zerolog.Level) bool {
	return level >= zerolog.GlobalLevel()
}
