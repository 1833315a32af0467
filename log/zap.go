// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"io"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultLogger writes info entries and above to stderr
var DefaultLogger Logger = NewZap(InfoLevel, os.Stderr)

const (
	fileBufferSize    = 64 * 1024
	fileFlushInterval = 5 * time.Second
)

var zapLevels = [...]zapcore.Level{
	DebugLevel:   zapcore.DebugLevel,
	InfoLevel:    zapcore.InfoLevel,
	WarningLevel: zapcore.WarnLevel,
	ErrorLevel:   zapcore.ErrorLevel,
}

// Zap is a Logger writing JSON lines through zap.
//
// Writers that can Sync, other than stdout and stderr, are files: entries
// below ErrorLevel are buffered and flushed every five seconds, error entries
// flush the buffer at once. Children created with With share the buffer.
type Zap struct {
	sugar *zap.SugaredLogger
	level zap.AtomicLevel
	files *fileSink
}

var _ Logger = (*Zap)(nil)

type fileSink struct {
	buffer  *zapcore.BufferedWriteSyncer
	syncers []zapcore.WriteSyncer
}

// flushing writes through the buffer then flushes it, keeping file order
type flushing struct {
	*zapcore.BufferedWriteSyncer
}

func (f flushing) Write(p []byte) (int, error) {
	n, err := f.BufferedWriteSyncer.Write(p)
	if err != nil {
		return n, err
	}
	return n, f.BufferedWriteSyncer.Sync()
}

// NewZap creates a Zap logger. An invalid level enables every entry.
func NewZap(level Level, writers ...io.Writer) *Zap {
	if level < DebugLevel || level >= InvalidLevel {
		level = DebugLevel
	}

	atom := zap.NewAtomicLevelAt(zapLevels[level])
	core, files := newCore(atom, writers)
	logger := zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel))

	return &Zap{
		sugar: logger.Sugar(),
		level: atom,
		files: files,
	}
}

func newCore(atom zap.AtomicLevel, writers []io.Writer) (zapcore.Core, *fileSink) {
	encoder := zapcore.NewJSONEncoder(encoderConfig())

	var console, files []zapcore.WriteSyncer
	for _, writer := range writers {
		if isFile(writer) {
			files = append(files, zapcore.AddSync(writer))
			continue
		}
		console = append(console, zapcore.AddSync(writer))
	}

	var cores []zapcore.Core
	if len(console) > 0 {
		cores = append(cores, zapcore.NewCore(encoder, zap.CombineWriteSyncers(console...), atom))
	}

	sink := &fileSink{syncers: files}
	if len(files) > 0 {
		sink.buffer = &zapcore.BufferedWriteSyncer{
			WS:            zap.CombineWriteSyncers(files...),
			Size:          fileBufferSize,
			FlushInterval: fileFlushInterval,
		}

		below := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return atom.Enabled(l) && l < zapcore.ErrorLevel
		})
		above := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
			return atom.Enabled(l) && l >= zapcore.ErrorLevel
		})

		cores = append(cores,
			zapcore.NewCore(encoder, sink.buffer, below),
			zapcore.NewCore(encoder, flushing{sink.buffer}, above))
	}

	if len(cores) == 0 {
		return zapcore.NewNopCore(), sink
	}
	return zapcore.NewTee(cores...), sink
}

func encoderConfig() zapcore.EncoderConfig {
	config := zap.NewProductionEncoderConfig()
	config.TimeKey = "ts"
	config.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	config.EncodeDuration = zapcore.StringDurationEncoder
	return config
}

// isFile reports whether writer is a syncable output other than stdout or stderr
func isFile(writer io.Writer) bool {
	if _, ok := writer.(interface{ Sync() error }); !ok {
		return false
	}

	if file, ok := writer.(*os.File); ok {
		return file != os.Stdout && file != os.Stderr
	}
	return true
}

func (z *Zap) Debug(v ...any)                 { z.sugar.Debug(v...) }
func (z *Zap) Debugf(format string, v ...any) { z.sugar.Debugf(format, v...) }
func (z *Zap) Info(v ...any)                  { z.sugar.Info(v...) }
func (z *Zap) Infof(format string, v ...any)  { z.sugar.Infof(format, v...) }
func (z *Zap) Warn(v ...any)                  { z.sugar.Warn(v...) }
func (z *Zap) Warnf(format string, v ...any)  { z.sugar.Warnf(format, v...) }
func (z *Zap) Error(v ...any)                 { z.sugar.Error(v...) }
func (z *Zap) Errorf(format string, v ...any) { z.sugar.Errorf(format, v...) }

// LogLevel returns the minimum level written
func (z *Zap) LogLevel() Level {
	current := z.level.Level()
	for level, zapLevel := range zapLevels {
		if zapLevel == current {
			return Level(level)
		}
	}
	return InvalidLevel
}

// Enabled reports whether entries at level are written
func (z *Zap) Enabled(level Level) bool {
	if level < DebugLevel || level >= InvalidLevel {
		return false
	}
	return z.level.Enabled(zapLevels[level])
}

// With returns a child logger carrying the key-value pairs
func (z *Zap) With(keyValues ...any) Logger {
	if len(keyValues) == 0 {
		return z
	}

	return &Zap{
		sugar: z.sugar.With(keyValues...),
		level: z.level,
		files: z.files,
	}
}

// Flush drains the file buffer, stops its background flusher and syncs the
// files. Entries logged afterwards are only written once the buffer fills up.
func (z *Zap) Flush() error {
	var err error
	if z.files.buffer != nil {
		err = multierr.Append(err, z.files.buffer.Stop())
	}

	for _, syncer := range z.files.syncers {
		err = multierr.Append(err, syncer.Sync())
	}
	return err
}
