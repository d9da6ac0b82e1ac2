// Package logging builds the zap logger shared by the numlist components.
//
// Diagnostics are off by default: an interactive calculator should print
// nothing but its answers. With --verbose a human-readable development
// logger writes debug records to the given stream.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a debug-level console logger writing to w when verbose is
// true, and a no-op logger otherwise.
func New(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
