package vrhlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the package-level logger every long-running construction step and
// the CLI driver write progress/debug lines to. Built once at init time,
// matching itohio/EasyRobot's pkg/logger wiring.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Caller().Logger()

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
}
