package runlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// TimestampLayout is the layout of the bracketed prefix on every line.
const TimestampLayout = "2006-01-02 15:04:05"

// ErrInvalidLogLine indicates a line without a bracketed timestamp.
var ErrInvalidLogLine = errors.New("invalid log line")

// ErrShortLog indicates a log with fewer than two lines.
var ErrShortLog = errors.New("log must contain at least two lines")

// Level is a log line severity.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logger writes timestamped lines to any number of writers. A Logger with no
// writers discards everything.
type Logger struct {
	mu      sync.Mutex
	writers []io.Writer
	now     func() time.Time
}

// New creates a logger writing to the non-nil writers.
func New(writers ...io.Writer) *Logger {
	logger := &Logger{now: time.Now}
	for _, writer := range writers {
		if writer != nil {
			logger.writers = append(logger.writers, writer)
		}
	}
	return logger
}

// WithClock replaces the time source.
func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.now = now
	return l
}

func (l *Logger) Infof(format string, args ...any) {
	l.log(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) {
	l.log(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) {
	l.log(LevelError, format, args...)
}

func (l *Logger) log(level Level, format string, args ...any) {
	if l == nil || len(l.writers) == 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := FormatLine(l.now(), level, fmt.Sprintf(format, args...))
	for _, writer := range l.writers {
		_, _ = io.WriteString(writer, line)
	}
}

// FormatLine renders one log line including the trailing newline.
func FormatLine(at time.Time, level Level, message string) string {
	return fmt.Sprintf("[%s] %s : %s\n", at.Format(TimestampLayout), level, message)
}

// ParseTimestamp reads the bracketed timestamp at the start of a line.
func ParseTimestamp(line string) (time.Time, error) {
	end := strings.Index(line, "]")
	if !strings.HasPrefix(line, "[") || end < 0 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLogLine, line)
	}
	at, err := time.Parse(TimestampLayout, line[1:end])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidLogLine, line, err)
	}
	return at, nil
}

// Duration returns the time between the first and last line of a log file.
func Duration(path string) (time.Duration, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	return DurationFrom(file)
}

// DurationFrom returns the time between the first and last line of r.
func DurationFrom(r io.Reader) (time.Duration, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var first, last string
	count := 0
	for scanner.Scan() {
		line := scanner.Text()
		if count == 0 {
			first = line
		}
		last = line
		count++
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	if count < 2 {
		return 0, ErrShortLog
	}
	start, err := ParseTimestamp(first)
	if err != nil {
		return 0, err
	}
	end, err := ParseTimestamp(last)
	if err != nil {
		return 0, err
	}
	return end.Sub(start), nil
}

// FormatDuration renders a duration as H:MM:SS.
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}
	total := int64(d / time.Second)
	return fmt.Sprintf("%s%d:%02d:%02d", sign, total/3600, total/60%60, total%60)
}
