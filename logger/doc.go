// Package logger builds the *slog.Logger used by the algoviz server and CLI.
//
// Three modes are supported:
//
//   - ModeDev: human readable text at debug level, stderr by default.
//   - ModeProd: JSON lines at info level, stdout by default.
//   - ModeSilence: everything is discarded.
//
// Engine packages never log; only the outer layers (server, cmd) do.
package logger
