package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/axiom-labs-org/core/pkg/types"
)

// root is the process-wide logger. It starts as a no-op so that library
// consumers (and tests) that never call Setup stay silent; the CLI installs
// a real logger at startup. Consensus-critical packages never log at all,
// which keeps canonical hashes pure functions of their inputs.
var root = zerolog.Nop()

// Options configure the process logger.
type Options struct {
	// Level is one of zerolog's level strings (debug, info, warn, error).
	// Empty means info.
	Level string

	// JSON switches from human-readable console lines to JSON output.
	JSON bool

	// Writer receives the log stream; os.Stdout when nil.
	Writer io.Writer
}

// Setup installs the process logger. Unknown level strings are an error so
// a typo on the command line fails loudly instead of silencing everything.
func Setup(opts Options) error {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return fmt.Errorf("unknown log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}
	if !opts.JSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	root = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return nil
}

// Component returns a logger tagged with the emitting subsystem.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}

// ForBlock tags a logger with a block's hash and slot.
func ForBlock(logger zerolog.Logger, hash types.Hash, slot types.Slot) zerolog.Logger {
	return logger.With().
		Str("block_hash", hash.Short()).
		Uint64("slot", uint64(slot)).
		Logger()
}

// ForSigner tags a logger with a transaction signer.
func ForSigner(logger zerolog.Logger, signer types.Address) zerolog.Logger {
	return logger.With().Str("signer", signer.Short()).Logger()
}
