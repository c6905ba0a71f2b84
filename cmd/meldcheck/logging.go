// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/logging/ctxlog"
	"github.com/lmittmann/tint"
)

func logLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelError
	case level == 1:
		return slog.LevelWarn
	case level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// withLogger returns a context carrying the logger described by lf. The
// text and json formats are handled by cmdutil.LoggingConfig, tint
// produces colourised console output.
func withLogger(ctx context.Context, lf cmdutil.LoggingFlags) (context.Context, func() error, error) {
	if lf.Format != "tint" {
		logger, err := lf.LoggingConfig().NewLogger()
		if err != nil {
			return ctx, nil, err
		}
		return ctxlog.WithLogger(ctx, logger.Logger), logger.Close, nil
	}
	var out io.Writer = os.Stderr
	closer := func() error { return nil }
	switch lf.File {
	case "":
	case "-":
		out = os.Stdout
	default:
		f, err := os.OpenFile(lf.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return ctx, nil, fmt.Errorf("failed to open log file %q: %w", lf.File, err)
		}
		out, closer = f, f.Close
	}
	handler := tint.NewHandler(out, &tint.Options{
		Level:      logLevel(lf.Level),
		AddSource:  lf.SourceCode,
		TimeFormat: time.StampMilli,
		NoColor:    out != os.Stderr,
	})
	return ctxlog.WithLogger(ctx, slog.New(handler)), closer, nil
}
