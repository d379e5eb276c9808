package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownMode is returned by ParseMode.
var ErrUnknownMode = errors.New("logger: unknown mode")

// Mode selects handler format, level and default destination.
type Mode uint8

const (
	ModeDev Mode = iota
	ModeProd
	ModeSilence
)

var modeNames = [...]string{
	ModeDev:     "dev",
	ModeProd:    "prod",
	ModeSilence: "silence",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}

	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ParseMode accepts "dev", "prod" and "silence", case-insensitively.
// The empty string maps to ModeDev.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeDev, nil
	}
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}

	return ModeDev, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v

	return nil
}

// New returns a logger for mode writing to w. A nil w selects the mode's
// default destination.
func New(mode Mode, w io.Writer) *slog.Logger {
	return slog.New(Handler(mode, w))
}

// Handler returns the slog.Handler behind New.
func Handler(mode Mode, w io.Writer) slog.Handler {
	switch mode {
	case ModeProd:
		if w == nil {
			w = os.Stdout
		}

		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.NewTextHandler(io.Discard, nil)
	default:
		if w == nil {
			w = os.Stderr
		}

		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger { return New(ModeSilence, nil) }
