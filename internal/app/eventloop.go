package app

import (
	"errors"

	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/renderer/backend"
	"github.com/dshills/viewlines/internal/renderer/statusline"
)

// wheelLines is how far one mouse wheel step scrolls.
const wheelLines = 3

// eventLoop renders, then waits for input, a configuration reload or
// shutdown.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()
	for {
		app.render()

		select {
		case <-app.done:
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case cfg := <-app.reloads:
			app.log.Info("configuration reloaded")
			app.applyConfig(cfg)
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.resize(ev.Width, ev.Height)
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventMouse:
		app.handleMouseEvent(ev)
	}
	return nil
}

// handleKeyEvent processes keyboard input events.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	v := app.view
	app.status.ClearMessage()

	switch ev.Key {
	case backend.KeyEscape, backend.KeyCtrlC:
		return ErrQuit
	case backend.KeyUp:
		v.CursorUp()
	case backend.KeyDown:
		v.CursorDown()
	case backend.KeyLeft:
		v.CursorLeft()
	case backend.KeyRight:
		v.CursorRight()
	case backend.KeyHome:
		v.CursorHome()
	case backend.KeyEnd:
		v.CursorEnd()
	case backend.KeyPageUp:
		v.PageUp()
	case backend.KeyPageDown:
		v.PageDown()
	case backend.KeyCtrlL:
		app.backend.Clear()
		v.Dirty().MarkFullRedraw()
	case backend.KeyRune:
		return app.handleRune(ev.Rune)
	}
	return nil
}

func (app *Application) handleRune(r rune) error {
	var err error
	switch r {
	case 'q':
		return ErrQuit
	case 'f':
		err = app.FoldAtCursor()
	case 'u':
		err = app.UnfoldAtCursor()
	case 'U':
		app.UnfoldAll()
	case 'w':
		app.ToggleWordWrap()
	case 'g':
		app.view.SetCursor(core.NewPosition(1, 1))
	case 'G':
		app.view.SetCursor(core.NewPosition(app.model.LineCount(), 1))
	}
	if err != nil {
		app.status.SetMessage(err.Error(), statusline.MessageInfo)
	}
	return nil
}

// handleMouseEvent scrolls on wheel events and moves the cursor on clicks.
func (app *Application) handleMouseEvent(ev backend.Event) {
	switch ev.MouseButton {
	case backend.MouseWheelUp:
		app.view.ScrollBy(-wheelLines)
	case backend.MouseWheelDown:
		app.view.ScrollBy(wheelLines)
	case backend.MouseLeft:
		app.view.ClickAt(ev.MouseX, ev.MouseY)
	}
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking, so the goroutine exits only after the backend is
// shut down or the next event arrives after Shutdown.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for app.running.Load() {
			ev := app.backend.PollEvent()
			if ev.Type == backend.EventNone || !app.running.Load() {
				return
			}

			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}
