// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package ocean

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("Logger: default logger should be disabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("rebuild", "nodes", 213)
	if s := buf.String(); !strings.Contains(s, "nodes=213") {
		t.Fatalf("Logger.Debug\nhave %q\nwant nodes=213", s)
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil): logger should be disabled")
	}
}
