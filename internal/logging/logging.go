// Package logging builds the zap logger used across atelier.
//
// The terminal belongs to the TUI, so nothing is written to stdout or stderr.
// With debug enabled, every entry goes as a JSON line to a fresh file.
// Otherwise only errors are kept, appended to the same file, which is created
// on the first error.
package logging

import (
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultPath is the fixed debug log location, relative to the working directory.
const DefaultPath = "atelier-debug.log"

// New returns a logger and a function that flushes and closes it.
func New(debug bool, path string) (*zap.Logger, func(), error) {
	if path == "" {
		path = DefaultPath
	}
	if !debug {
		out := &lazyFile{path: path}
		logger := zap.New(newCore(out, zapcore.ErrorLevel)).With(zap.Int("pid", os.Getpid()))
		return logger, func() {
			_ = logger.Sync()
			_ = out.Close()
		}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating debug log: %w", err)
	}

	logger := zap.New(newCore(zapcore.AddSync(f), zapcore.DebugLevel)).With(zap.Int("pid", os.Getpid()))
	logger.Debug("debug log started", zap.String("log_file", path))

	closer := func() {
		logger.Debug("debug log finished")
		_ = logger.Sync()
		_ = f.Close()
	}
	return logger, closer, nil
}

func newCore(out zapcore.WriteSyncer, level zapcore.Level) zapcore.Core {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), out, level)
}

// lazyFile opens path for appending on the first write.
type lazyFile struct {
	mu   sync.Mutex
	path string
	f    *os.File
	err  error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil && l.err == nil {
		l.f, l.err = os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	}
	if l.err != nil {
		return 0, l.err
	}
	return l.f.Write(p)
}

func (l *lazyFile) Sync() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	return l.f.Sync()
}

func (l *lazyFile) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
