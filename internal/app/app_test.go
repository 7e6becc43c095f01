// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

package app

import (
	"bytes"
	"errors"
	"image/png"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"appdemo/internal/clock"
	"appdemo/internal/state"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scratchFlags points the package flag surface at a throwaway flag set so
// Run can be driven with synthetic arguments.
func scratchFlags(t *testing.T, args ...string) {
	t.Helper()

	origArgs := os.Args
	origCmd := pflag.CommandLine
	origFlag := flag

	pflag.CommandLine = pflag.NewFlagSet("gui", pflag.ContinueOnError)
	registerFlags(pflag.CommandLine)
	os.Args = append([]string{"gui"}, args...)

	t.Cleanup(func() {
		os.Args = origArgs
		pflag.CommandLine = origCmd
		flag = origFlag
	})
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "Application 1.2.3", WindowTitle("1.2.3"))
}

func TestNewDefaults(t *testing.T) {
	a := New("Application")

	assert.Equal(t, "org.gtk.example", a.Meta.ID)
	assert.Equal(t, "Application", a.Meta.Name)
	assert.NotNil(t, a.ErrCh)
	assert.IsType(t, clock.Real{}, a.Clock)
}

func TestActivationRunsOnce(t *testing.T) {
	a := New("Application")

	calls := 0
	a.activate = func() { calls++ }

	a.onReady()
	a.onReady()
	a.onReady()

	assert.Equal(t, 1, calls)
}

func TestWindowBody(t *testing.T) {
	instant := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)

	a := New("Application")
	a.Meta.Version = "1.2.3"
	a.Clock = clock.Frozen{Instant: instant}
	a.started = instant.Add(-5 * time.Second)

	assert.Equal(t, "version: 1.2.3\nup 5s", a.windowBody())
	assert.Equal(t, a.windowBody(), a.windowBody())
}

func TestRunRejectsUnknownArg(t *testing.T) {
	scratchFlags(t, "bogus")

	a := New("Application")
	assert.Equal(t, 2, a.Run())
}

func TestRunVersionFlag(t *testing.T) {
	scratchFlags(t, "--version")

	a := New("Application")
	a.Meta.Version = "1.2.3"
	assert.Equal(t, 0, a.Run())
}

func TestWindowCloseQuits(t *testing.T) {
	t.Cleanup(state.Clear)

	a := New("Application")
	quit := make(chan struct{})
	a.presentWindow = func() error { return nil }
	a.quit = func() { close(quit) }

	a.openWindow()

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("closing the window did not quit the application")
	}

	open, ok := state.Get[bool]("window_main")
	require.True(t, ok)
	assert.False(t, open)
	assert.Equal(t, 0, int(a.status.Load()))
}

func TestWindowSingleInstance(t *testing.T) {
	t.Cleanup(state.Clear)

	a := New("Application")
	var calls atomic.Int32
	block := make(chan struct{})
	a.presentWindow = func() error {
		calls.Add(1)
		<-block
		return nil
	}
	a.quit = func() {}

	a.openWindow()
	require.Eventually(t, func() bool {
		open, ok := state.Get[bool]("window_main")
		return ok && open
	}, time.Second, time.Millisecond)

	a.openWindow()
	assert.Equal(t, int32(1), calls.Load())
	close(block)
}

func TestWindowErrorSetsStatus(t *testing.T) {
	t.Cleanup(state.Clear)

	a := New("Application")
	a.ErrCh = make(chan error, 1)
	quit := make(chan struct{})
	a.presentWindow = func() error { return errors.New("no display") }
	a.quit = func() { close(quit) }

	a.openWindow()

	select {
	case <-quit:
	case <-time.After(time.Second):
		t.Fatal("window failure did not quit the application")
	}

	assert.Equal(t, 1, int(a.status.Load()))
	err := <-a.ErrCh
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no display")
}

func TestLogFormatterNormalizesQuotes(t *testing.T) {
	f := &LogFormatter{logrus.TextFormatter{DisableColors: true}}

	entry := logrus.NewEntry(logrus.New())
	entry.Message = `opened "window"`

	b, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(b), "opened 'window'")
	assert.NotContains(t, string(b), `"window"`)
}

func TestTrayIconIsValidPNG(t *testing.T) {
	data := trayIcon()
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
}
