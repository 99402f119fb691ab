package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FileName is the log file created inside the logs directory.
const FileName = "shopcart.log"

// Config selects where the log file lives and how verbose it is. Dir is
// the logs directory relative to Root (domain.Config.Paths.LogsDir).
type Config struct {
	Root    string
	Dir     string
	Debug   bool
	Command string
}

// sink is one open log file. Every record written through it carries the
// invocation id and command so runs appending to the same file can be told
// apart.
type sink struct {
	file       *os.File
	path       string
	invocation string
	log        *slog.Logger
}

var (
	mu      sync.RWMutex
	current *sink
	discard = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup opens <root>/<dir>/shopcart.log and installs it as the global
// logger. The returned cleanup closes the file and restores a discard
// logger.
func Setup(cfg Config) (func() error, error) {
	root := filepath.Clean(cfg.Root)
	dir := cfg.Dir
	if dir == "" {
		dir = filepath.Join(".shopcart", "logs")
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(root, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		reset()
		return nil, err
	}

	path := filepath.Join(dir, FileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: slog.LevelInfo, ReplaceAttr: utcTime}
	if cfg.Debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	s := &sink{file: f, path: path, invocation: uuid.NewString()}
	s.log = slog.New(slog.NewJSONHandler(f, opts)).With(
		"invocation", s.invocation,
		"command", cfg.Command,
	)

	mu.Lock()
	current = s
	mu.Unlock()

	s.log.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		defer mu.Unlock()
		if current != s {
			return nil
		}
		current = nil
		return s.file.Close()
	}, nil
}

// L returns the active logger, or one that discards everything.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return discard
	}
	return current.log
}

// Path is the open log file, empty when logging is off.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return ""
	}
	return current.path
}

func reset() {
	mu.Lock()
	current = nil
	mu.Unlock()
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}
