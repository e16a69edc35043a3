package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"organizer/internal/domain"
)

const timestampLayout = "2006-01-02 15:04:05"

// Logger emits one line per move record to the console and, when attached,
// to an append-mode log file. It also carries the verbose diagnostics and
// timing helpers used throughout the run.
type Logger struct {
	console io.Writer
	file    *os.File
	verbose bool
	now     func() time.Time
}

func New(console io.Writer, verbose bool) *Logger {
	return &Logger{
		console: console,
		verbose: verbose,
		now:     time.Now,
	}
}

// AttachFile opens path in append mode and mirrors all output there. The
// caller decides whether a failure is fatal; the original tool warns and
// continues with console logging only.
func (l *Logger) AttachFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	l.file = file
	return nil
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// StartRun writes the run header and returns the generated run ID.
func (l *Logger) StartRun(targetDir string, dryRun bool) string {
	runID := uuid.NewString()
	mode := "live"
	if dryRun {
		mode = "dry-run"
	}
	l.writeLine(fmt.Sprintf("[%s] run %s started: target=%s mode=%s", l.now().Format(timestampLayout), runID, targetDir, mode))
	return runID
}

// Record writes a single move record line.
func (l *Logger) Record(rec domain.MoveRecord) {
	if l == nil {
		return
	}
	l.writeLine(FormatRecord(l.now(), rec))
}

func (l *Logger) Infof(format string, args ...any) {
	l.writeLine(fmt.Sprintf(format, args...))
}

func (l *Logger) Verbosef(format string, args ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.Infof("Verbose: "+format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l *Logger) Measure(label string) func() {
	if l == nil || !l.verbose {
		return func() {}
	}
	start := l.now()
	return func() {
		elapsed := l.now().Sub(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}

func (l *Logger) writeLine(line string) {
	if l == nil {
		return
	}
	if l.console != nil {
		fmt.Fprintln(l.console, line)
	}
	if l.file != nil {
		fmt.Fprintln(l.file, line)
	}
}

// FormatRecord renders the canonical log line for a move record:
// [<timestamp>] <outcome>: <source> -> <destination>
func FormatRecord(ts time.Time, rec domain.MoveRecord) string {
	line := fmt.Sprintf("[%s] %s: %s -> %s", ts.Format(timestampLayout), rec.Outcome, rec.Source, rec.Destination)
	if rec.Reason != "" {
		line += fmt.Sprintf(" (%s)", rec.Reason)
	}
	return line
}
