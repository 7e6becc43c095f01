// Copyright (c) 2026, the appdemo authors
// See LICENSE for licensing information

package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"appdemo/internal/state"
	"github.com/ncruces/zenity"
)

// openWindow presents the application window. Only one instance is kept open
// at a time. Closing the window quits the application, matching the
// lifecycle of a single-window app.
func (a *Application) openWindow() {
	if open, ok := state.Get[bool]("window_main"); ok && open {
		log.Debug("Window already open")
		return
	}
	state.Set("window_main", true)

	log.Debugf("Opening window %q", WindowTitle(a.Meta.Version))
	go func() {
		err := a.presentWindow()
		state.Set("window_main", false)

		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			a.status.Store(1)
			a.ErrCh <- fmt.Errorf("failed to present window: %v", err)
		}

		log.Debug("Window closed")
		a.quit()
	}()
}

// presentMainWindow shows the 200x200 window titled with the version and
// blocks until it is dismissed.
func (a *Application) presentMainWindow() error {
	return zenity.Info(a.windowBody(),
		zenity.Title(WindowTitle(a.Meta.Version)),
		zenity.Width(windowWidth),
		zenity.Height(windowHeight),
		zenity.InfoIcon,
	)
}

// windowBody renders the text shown inside the application window.
func (a *Application) windowBody() string {
	return fmt.Sprintf("version: %s\nup %s", a.Meta.Version, a.Clock.Since(a.started).Round(time.Second))
}

// showAbout displays the about box with version, build, and platform details.
// At most one about box is open at a time.
func (a *Application) showAbout() {
	a.dialog("About",
		a.Meta.Name+", version "+a.Meta.Version+" ("+platformLabel()+")\nbuild "+a.Meta.Build)
}

// dialog displays an information dialog with the specified title and text.
// It ensures that only one dialog with the same title is shown at a time by
// tracking state. The dialog runs in a separate goroutine.
func (a *Application) dialog(title string, text string) {
	stateLabel := "dialog_" + strings.ToLower(strings.ReplaceAll(title, " ", ""))
	if open, ok := state.Get[bool](stateLabel); ok && open {
		return
	}
	state.Set(stateLabel, true)

	go func() {
		err := zenity.Info(text, zenity.Title(title))
		state.Set(stateLabel, false)

		if err != nil && !errors.Is(err, zenity.ErrCanceled) {
			a.ErrCh <- fmt.Errorf("failed to present %q: %v", title, err)
		}
	}()
}
