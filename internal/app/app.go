// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

// Package app provides the GUI demo application: a tray-resident shell that
// presents a single window titled after the build version.
// The Application struct encapsulates the application's error channel, time
// source, and metadata. Key features include:
//   - Command-line flag parsing for logging, verbosity, and version display.
//   - Logger setup with support for file output and log rotation.
//   - System tray integration with menu items for about information and
//     quitting.
//   - An activation callback guaranteed to run exactly once per process,
//     which creates the application window.
//   - Dialog utilities that keep at most one instance of each dialog open.
//
// The toolkit's event loop is owned by systray; on Linux it is a GTK main
// loop. The application quits when the window is closed or Quit is chosen
// from the tray menu.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"appdemo/internal/clock"
	"appdemo/internal/state"
	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ID is the fixed reverse-domain application identifier.
const ID = "org.gtk.example"

// titlePrefix is prepended to the version to form the window title.
const titlePrefix = "Application "

const (
	windowWidth  = 200
	windowHeight = 200
)

var (
	log  = logrus.New()
	flag struct {
		LogFile  string
		LogLevel string
		Verbose  bool
		Version  bool
	}
)

// LogFormatter is a custom log formatter that embeds logrus.TextFormatter,
// allowing for additional customization of log output formatting.
type LogFormatter struct{ logrus.TextFormatter }

// Format formats a logrus.Entry by replacing all double quotes in the message
// with single quotes, then delegates formatting to the embedded TextFormatter.
func (f *LogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	entry.Message = strings.ReplaceAll(entry.Message, `"`, `'`)
	b, err := f.TextFormatter.Format(entry)
	if err != nil {
		return nil, err
	}

	return b, nil
}

// Application represents the GUI demo application, containing a channel for
// runtime errors, a swappable time source, and metadata such as the
// application's identifier, name, version, and build number.
type Application struct {
	ErrCh chan error
	Clock clock.Clock
	Meta  struct {
		ID      string
		Build   string
		Name    string
		Version string
	}

	started       time.Time
	activate      func()
	presentWindow func() error
	quit          func()
	once          sync.Once
	status        atomic.Int32
}

// New creates a new Application instance with the specified name.
// It initializes the error channel, sets the fixed application identifier,
// and installs the real time source and the default activation behavior.
func New(name string) *Application {
	a := &Application{
		ErrCh: make(chan error),
		Clock: clock.Real{},
	}
	a.Meta.ID = ID
	a.Meta.Name = name
	a.activate = a.activateUI
	a.presentWindow = a.presentMainWindow
	a.quit = systray.Quit

	return a
}

// Run starts the main execution flow of the Application.
// It parses command-line arguments, handles version display, sets up logging,
// and hands control to the toolkit's event loop. Run blocks until the window
// is closed or the application quits, and returns the exit status.
func (a *Application) Run() int {
	pflag.Parse()

	if pflag.Arg(0) != "" {
		pflag.Usage()

		if !strings.EqualFold(pflag.Arg(0), "help") && pflag.Arg(0) != "?" {
			fmt.Fprintf(os.Stderr, "unknown arg: %s\n", pflag.Arg(0))
		}

		return 2
	}
	if flag.Version {
		fmt.Fprintln(os.Stderr, a.Meta.Version)
		return 0
	}

	setLogger(a.Meta.Name)
	a.started = a.Clock.Now()
	log.Debugf("Application %q ready", a.Meta.ID)
	systray.Run(a.onReady, a.onExit)

	return int(a.status.Load())
}

// onReady is the toolkit's activation callback. The toolkit contract is one
// invocation per run; the Once keeps that guarantee even if readiness is
// signalled again.
func (a *Application) onReady() {
	a.once.Do(a.activate)
}

// activateUI initializes the UI once the toolkit is ready. It sets up the
// tray icon and menu items (about, quit), opens the application window, and
// enters a loop handling menu item clicks and runtime errors.
func (a *Application) activateUI() {
	log.Info("Application started")

	systray.SetIcon(trayIcon())
	systray.SetTitle(a.Meta.Name)
	systray.SetTooltip(WindowTitle(a.Meta.Version))

	mTopAbout := systray.AddMenuItem("About", "")
	mTopQuit := systray.AddMenuItem("Quit", "")

	a.openWindow()

	for {
		select {
		case <-mTopAbout.ClickedCh:
			log.Debug("*Clicked About*")
			a.showAbout()

		case <-mTopQuit.ClickedCh:
			log.Debug("*Clicked Quit*")
			systray.Quit()

		case err := <-a.ErrCh:
			log.Error(err)
		}
	}
}

// onExit handles cleanup operations when the application is stopping.
// It logs the application stop event and clears the shared state.
func (a *Application) onExit() {
	log.Info("Application stopped")
	state.Clear()
}

// WindowTitle returns the window title for the given version string.
func WindowTitle(version string) string {
	return titlePrefix + version
}

// setLogger initializes and configures the global logger instance.
// It sets the log formatter, log level, and output destinations based on the
// global flag values. If a log file is specified, it validates the file path
// and configures log rotation using lumberjack. The logger output is set to
// both stderr and the log file (if valid).
func setLogger(logName string) {
	log = logrus.New()
	log.SetFormatter(&LogFormatter{logrus.TextFormatter{DisableColors: false, FullTimestamp: true}})

	if lvl, err := logrus.ParseLevel(flag.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid log level: %v\n", err)
	} else {
		log.SetLevel(lvl)
	}
	if flag.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	writers := []io.Writer{}
	if flag.LogFile != "" {
		logF := flag.LogFile
		var logD, logN string

		info, err := os.Stat(logF)
		if err == nil && info.IsDir() {
			logD = logF
			logN = logName
		} else {
			logD = filepath.Dir(logF)
			logN = filepath.Base(logF)
		}

		logF = filepath.Join(logD, logN)
		logT := logF + ".TMP"
		valid := true

		f, err := os.Create(logT)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid log file: %v\n", err)
			valid = false
		} else {
			if err = f.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to close %q: %v\n", logT, err)
				valid = false
			}
			if err = os.Remove(logT); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to remove %q: %v\n", logT, err)
				valid = false
			}
		}

		if valid {
			writers = append(writers, &lumberjack.Logger{
				Filename:   logF,
				MaxBackups: 4,
				MaxAge:     28,
			})
		}
	}

	writers = append([]io.Writer{os.Stderr}, writers...)
	mw := io.MultiWriter(writers...)
	log.SetOutput(mw)
}

// platformLabel describes the running build for the about box.
func platformLabel() string {
	return runtime.GOOS + "-" + runtime.GOARCH
}

// registerFlags declares the flag surface on the given flag set. It is split
// from init so tests can drive Run through a scratch flag set.
func registerFlags(fs *pflag.FlagSet) {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", filepath.Base(os.Args[0]))
		pflag.PrintDefaults()
	}
	pflag.ErrHelp = errors.New("")
	fs.SortFlags = false
	fs.StringVar(&flag.LogLevel, "log-level", "INFO", "Log level: DEBUG|INFO|WARN|ERROR|FATAL|PANIC")
	fs.StringVar(&flag.LogFile, "log", "", "File path to save log output")
	fs.BoolVarP(&flag.Verbose, "verbose", "v", false, "Log debug output")
	fs.BoolVar(&flag.Version, "version", false, "Prints version")
}

func init() {
	registerFlags(pflag.CommandLine)
}
