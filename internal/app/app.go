// Package app wires a text model, the view model and the terminal view
// into the viewlines browser.
package app

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/dshills/viewlines/internal/config"
	"github.com/dshills/viewlines/internal/core"
	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/logging"
	"github.com/dshills/viewlines/internal/renderer"
	"github.com/dshills/viewlines/internal/renderer/backend"
	rcore "github.com/dshills/viewlines/internal/renderer/core"
	"github.com/dshills/viewlines/internal/renderer/statusline"
	"github.com/dshills/viewlines/internal/textmodel"
	"github.com/dshills/viewlines/internal/viewmodel"
)

// Options configures an Application.
type Options struct {
	// Filename is shown in the status line.
	Filename string

	// Text is the document content.
	Text string

	// Config names the configuration sources.
	Config config.Sources

	// Watch reloads the configuration when its files change.
	Watch bool

	Logger *logging.Logger

	// LogLevel overrides the configured logging level when set.
	LogLevel string
}

// Application owns the model, its view lines and, while running, the
// terminal view.
type Application struct {
	running   atomic.Bool
	done      chan struct{}
	closeOnce sync.Once

	log     *logging.Logger
	configs *config.Manager
	reloads chan config.Config
	cfg     config.Config
	watch   bool

	logLevel string

	filename string
	model    *textmodel.Model
	lines    *viewmodel.ProjectedLines

	backend backend.Backend
	view    *renderer.View
	status  *statusline.StatusLine
}

// New loads the configuration and builds the view lines for opts.Text. A
// configuration error is logged and the defaults are used.
func New(opts Options) *Application {
	log := logging.OrDiscard(opts.Logger)

	app := &Application{
		done:     make(chan struct{}),
		log:      log.WithComponent("app"),
		reloads:  make(chan config.Config, 1),
		watch:    opts.Watch,
		logLevel: opts.LogLevel,
		filename: opts.Filename,
		status:   statusline.New(),
	}

	mgr, err := config.NewManager(opts.Config, config.WithLogger(log))
	if err != nil {
		app.log.Warn("using default configuration: %v", err)
		app.status.SetMessage(err.Error(), statusline.MessageWarning)
	}
	app.configs = mgr
	app.cfg = mgr.Config()
	app.setLogLevel()

	app.model = textmodel.New(opts.Text, textmodel.WithTabSize(app.cfg.View.TabSize))
	factories := linebreak.Factories{Simple: linebreak.NewMonospaceFactory()}
	app.lines = viewmodel.NewProjectedLines(app.model, factories, app.cfg.View.WrappingOptions(), viewmodel.WithLogger(log))

	mgr.OnChange(app.queueReload)
	return app
}

// Config returns the configuration in effect.
func (app *Application) Config() config.Config {
	return app.cfg
}

// Lines returns the view lines.
func (app *Application) Lines() viewmodel.Lines {
	return app.lines
}

// Dump writes every view line to w, wrapped for a viewport of width cells.
// Continuation lines get a blank line number.
func (app *Application) Dump(w io.Writer, width int) error {
	cfg := app.cfg.View
	cfg.ViewportWidth = width
	app.lines.SetWrappingSettings(cfg.WrappingOptions())

	digits := len(fmt.Sprint(app.model.LineCount()))
	count := app.lines.ViewLineCount()
	for i, data := range app.lines.ViewLinesData(1, count, nil) {
		viewLine := i + 1
		pos := app.lines.ConvertViewPositionToModelPosition(viewLine, data.MinColumn)
		number := ""
		if app.lines.ViewLineNumberOfModelPosition(pos.Line, 1) == viewLine {
			number = fmt.Sprint(pos.Line)
		}
		if _, err := fmt.Fprintf(w, "%*s  %s\n", digits, number, data.Content); err != nil {
			return err
		}
	}
	return nil
}

// Run takes over b until the user quits or Shutdown is called.
func (app *Application) Run(b backend.Backend) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := b.Init(); err != nil {
		return fmt.Errorf("initializing backend: %w", err)
	}
	defer b.Shutdown()
	app.attach(b)

	if app.watch {
		if err := app.configs.Watch(); err != nil {
			app.log.Warn("config watch failed: %v", err)
			app.status.SetMessage("config watch failed: "+err.Error(), statusline.MessageWarning)
		}
	}

	return app.eventLoop()
}

// attach creates the view over b and lays it out for the backend size.
func (app *Application) attach(b backend.Backend) {
	app.backend = b
	opts := renderer.DefaultOptions()
	opts.TabSize = app.cfg.View.TabSize
	opts.Logger = app.log
	app.view = renderer.NewView(app.model, app.lines, b, opts)
	width, height := b.Size()
	app.resize(width, height)
}

// Shutdown stops Run and the configuration watcher. It is safe to call
// more than once.
func (app *Application) Shutdown() {
	app.closeOnce.Do(func() {
		close(app.done)
		if err := app.configs.Close(); err != nil {
			app.log.Warn("closing config watcher: %v", err)
		}
	})
}

// queueReload runs on the watcher goroutine. Only the newest pending
// configuration is kept.
func (app *Application) queueReload(cfg config.Config) {
	for {
		select {
		case app.reloads <- cfg:
			return
		default:
		}
		select {
		case <-app.reloads:
		default:
		}
	}
}

// applyConfig switches to cfg and rewraps.
func (app *Application) applyConfig(cfg config.Config) {
	app.cfg = cfg
	app.setLogLevel()
	if app.view != nil {
		app.view.SetTabSize(cfg.View.TabSize)
	}
	var events []viewmodel.Event
	if app.lines.SetTabSize(cfg.View.TabSize) {
		events = append(events, viewmodel.FlushedEvent{})
	}
	events = append(events, app.rewrap()...)
	app.apply(events)
	app.status.SetMessage("configuration reloaded", statusline.MessageInfo)
}

func (app *Application) setLogLevel() {
	level := app.cfg.Logging.Level
	if app.logLevel != "" {
		level = app.logLevel
	}
	app.log.SetLevel(logging.ParseLevel(level))
}

// resize lays out the view and status line for a width x height screen.
func (app *Application) resize(width, height int) {
	textHeight := max(0, height-app.status.Height())
	app.view.SetRect(rcore.RectFromSize(0, 0, textHeight, width))
	app.status.Resize(width)
	app.apply(app.rewrap())
}

// rewrap recomputes wrapping for the current viewport width.
func (app *Application) rewrap() []viewmodel.Event {
	view := app.cfg.View
	if app.view != nil {
		view.ViewportWidth = app.view.TextWidth()
	}
	if app.lines.SetWrappingSettings(view.WrappingOptions()) {
		app.log.Debug("rewrapped at column %d", view.EffectiveWrappingColumn())
		return []viewmodel.Event{viewmodel.FlushedEvent{}}
	}
	return nil
}

func (app *Application) apply(events []viewmodel.Event) {
	if app.view != nil {
		app.view.Apply(events)
	}
}

// render paints the view and the status line.
func (app *Application) render() {
	cursor := app.view.CursorModelPosition()
	mode := "NOWRAP"
	if app.cfg.View.WordWrap != config.WordWrapOff {
		mode = "WRAP"
	}
	app.status.SetStatus(statusline.Status{
		Mode:      mode,
		Filename:  app.filename,
		Line:      cursor.Line,
		Column:    cursor.Column,
		ViewLine:  app.view.CursorViewPosition().Line,
		ViewLines: app.lines.ViewLineCount(),
		Folds:     len(app.lines.HiddenAreas()),
	})
	_, height := app.backend.Size()
	app.status.Render(app.backend, height-app.status.Height())
	app.view.Render()
}

// FoldAtCursor hides the block indented deeper than the cursor line that
// follows it.
func (app *Application) FoldAtCursor() error {
	line := app.view.CursorModelPosition().Line
	if app.isBlank(line) {
		return ErrNothingToFold
	}
	base := app.model.LineIndentColumn(line)
	end := line
	for l := line + 1; l <= app.model.LineCount(); l++ {
		if app.isBlank(l) {
			continue
		}
		if app.model.LineIndentColumn(l) <= base {
			break
		}
		end = l
	}
	if end == line {
		return ErrNothingToFold
	}

	ranges := append(app.lines.HiddenAreas(), core.LineRange(line+1, end))
	if app.lines.SetHiddenAreas(ranges) {
		app.apply([]viewmodel.Event{viewmodel.FlushedEvent{}})
	}
	return nil
}

// UnfoldAtCursor reveals the hidden range directly below the cursor line.
func (app *Application) UnfoldAtCursor() error {
	line := app.view.CursorModelPosition().Line
	hidden := app.lines.HiddenAreas()
	kept := hidden[:0:0]
	for _, r := range hidden {
		if r.StartLine != line+1 {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(hidden) {
		return ErrNotFolded
	}
	if app.lines.SetHiddenAreas(kept) {
		app.apply([]viewmodel.Event{viewmodel.FlushedEvent{}})
	}
	return nil
}

// UnfoldAll reveals every hidden line.
func (app *Application) UnfoldAll() {
	if app.lines.SetHiddenAreas(nil) {
		app.apply([]viewmodel.Event{viewmodel.FlushedEvent{}})
	}
}

// ToggleWordWrap switches between no wrapping and wrapping at the viewport
// width.
func (app *Application) ToggleWordWrap() {
	if app.cfg.View.WordWrap == config.WordWrapOff {
		app.cfg.View.WordWrap = config.WordWrapOn
	} else {
		app.cfg.View.WordWrap = config.WordWrapOff
	}
	app.apply(app.rewrap())
}

func (app *Application) isBlank(line int) bool {
	return app.model.LineIndentColumn(line) == app.model.LineMaxColumn(line)
}
