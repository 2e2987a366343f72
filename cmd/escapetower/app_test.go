package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/escapetower/component"
	"github.com/c360studio/escapetower/config"
	"github.com/c360studio/escapetower/session"
)

// syncBuffer is a bytes.Buffer safe for writes from the session goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeRecords(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "components.yaml")
	content := `
components:
  - name: zeta
    type: x
    priority: 1
  - name: alpha
    type: y
    priority: 5
  - name: mike
    type: x
    priority: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestAppRunInteractive(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil, quietLogger())

	var out, errOut bytes.Buffer
	in := strings.NewReader("1\nhull\nsupport\n7\n5\n0\n")
	err := app.Run(context.Background(), in, &out, &errOut)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[01] Name: hull")
	assert.Contains(t, out.String(), session.Farewell)
	assert.Empty(t, errOut.String(), "metrics are off by default")
}

func TestAppRunWritesMetrics(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Metrics.Enabled = true

	inv, err := component.LoadFile(writeRecords(t))
	require.NoError(t, err)
	app := NewApp(cfg, inv, quietLogger())

	var out, errOut bytes.Buffer
	require.NoError(t, app.Run(context.Background(), strings.NewReader("1\n4\nmike\n0\n"), &out, &errOut))

	assert.Contains(t, out.String(), ">> Key component FOUND!")
	assert.Contains(t, errOut.String(), `escapetower_sort_runs_total{algorithm="bubble-name"} 1`)
	assert.Contains(t, errOut.String(), `escapetower_search_requests_total{result="found"} 1`)
}

func TestAppRunCancelled(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil, quietLogger())

	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	out := &syncBuffer{}
	result := make(chan error, 1)
	go func() {
		result <- app.Run(ctx, pr, out, io.Discard)
	}()

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Contains(t, out.String(), "Interrupted.")
}

func TestAppRunCancelledBetweenChoices(t *testing.T) {
	records := writeRecords(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The session returns ctx.Err() at the menu while ctx.Done() is also
	// ready; both paths must end as an interruption.
	for i := 0; i < 20; i++ {
		inv, err := component.LoadFile(records)
		require.NoError(t, err)
		app := NewApp(config.DefaultConfig(), inv, quietLogger())

		out := &syncBuffer{}
		require.NoError(t, app.Run(ctx, strings.NewReader("5\n0\n"), out, io.Discard))
		assert.Contains(t, out.String(), "Interrupted.")
	}
}

func TestRootCmdFlagOverridesBrokenConfigLevel(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userConfig := filepath.Join(home, config.UserConfigDir, config.UserConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(userConfig), 0755))
	require.NoError(t, os.WriteFile(userConfig, []byte("log:\n  level: chatty\n"), 0644))

	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader("0\n"))
	cmd.SetArgs([]string{"--records", writeRecords(t), "--log-level", "error"})
	require.NoError(t, cmd.Execute())

	cmd = rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader("0\n"))
	cmd.SetArgs([]string{"--records", writeRecords(t)})
	assert.ErrorContains(t, cmd.Execute(), "invalid configuration")
}

func TestRootCmdVersion(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "escapetower version "+Version+" (build: "+BuildTime+")\n", out.String())
}

func TestRootCmdConfigInit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cmd := rootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetArgs([]string{"config", "init"})
	require.NoError(t, cmd.Execute())

	cfg, err := config.LoadFromFile(filepath.Join(home, config.UserConfigDir, config.UserConfigFile))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestRootCmdWithRecords(t *testing.T) {
	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader("3\n0\n"))
	cmd.SetArgs([]string{"--records", writeRecords(t), "--log-level", "error", "--metrics"})

	require.NoError(t, cmd.Execute())
	assert.NotContains(t, out.String(), "How many components")
	assert.Contains(t, out.String(), ">> Sorted by PRIORITY (Selection, desc).")
	assert.Contains(t, errOut.String(), `escapetower_sort_comparisons_total{algorithm="selection-priority"} 3`)
}

func TestRootCmdEndOfInputIsClean(t *testing.T) {
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--log-level", "error"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), session.Banner)
	assert.NotContains(t, out.String(), session.Farewell)
}

func TestRootCmdErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing records file",
			args:    []string{"--records", filepath.Join(os.TempDir(), "escapetower-missing.yaml")},
			wantErr: "load components",
		},
		{
			name:    "missing config file",
			args:    []string{"--config", filepath.Join(os.TempDir(), "escapetower-missing-config.yaml")},
			wantErr: "load config",
		},
		{
			name:    "bad log level",
			args:    []string{"--log-level", "chatty"},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := rootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetIn(strings.NewReader(""))
			cmd.SetArgs(tt.args)

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := newLogger(tt.level)
			assert.True(t, logger.Enabled(context.Background(), tt.want))
			if tt.want > slog.LevelDebug {
				assert.False(t, logger.Enabled(context.Background(), tt.want-1))
			}
		})
	}
}
