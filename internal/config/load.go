package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/dshills/viewlines/internal/config/loader"
	"github.com/dshills/viewlines/internal/config/watcher"
	"github.com/dshills/viewlines/internal/logging"
)

// DefaultEnvPrefix is the prefix of environment variable overrides.
const DefaultEnvPrefix = "VIEWLINES_"

// Sources names where configuration is read from. Empty paths are
// skipped; missing files are treated as empty.
type Sources struct {
	// FS is used for both files. Nil means the OS file system.
	FS        loader.FileSystem
	TOMLPath  string
	YAMLPath  string
	EnvPrefix string
}

// Files returns the configured file paths.
func (s Sources) Files() []string {
	var files []string
	for _, p := range []string{s.TOMLPath, s.YAMLPath} {
		if p != "" {
			files = append(files, p)
		}
	}
	return files
}

// Load builds a Config from defaults and every source, validates it, and
// returns it. On error the returned Config is the defaults.
func Load(src Sources) (Config, error) {
	fsys := src.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}

	var layers []loader.Loader
	if src.TOMLPath != "" {
		layers = append(layers, loader.NewTOMLLoaderWithFS(fsys, src.TOMLPath))
	}
	if src.YAMLPath != "" {
		layers = append(layers, loader.NewYAMLLoaderWithFS(fsys, src.YAMLPath))
	}
	if src.EnvPrefix != "" {
		layers = append(layers, loader.NewEnvLoader(src.EnvPrefix))
	}

	merged := make(map[string]any)
	for _, l := range layers {
		m, err := l.Load()
		if err != nil {
			return Default(), fmt.Errorf("loading config: %w", err)
		}
		merged = loader.DeepMerge(merged, m)
	}

	cfg := Default()
	if err := cfg.Apply(merged); err != nil {
		return Default(), fmt.Errorf("binding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger sets the manager's logger.
func WithLogger(l *logging.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

// WithDebounce sets the watcher debounce used by Watch.
func WithDebounce(d time.Duration) ManagerOption {
	return func(m *Manager) {
		m.debounce = d
	}
}

// Manager holds the current configuration and reloads it on demand or
// when its files change. It is safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	src       Sources
	cfg       Config
	observers []func(Config)
	w         *watcher.Watcher
	debounce  time.Duration
	log       *logging.Logger
}

// NewManager loads the configuration once. A load error is returned
// along with a usable manager holding the defaults.
func NewManager(src Sources, opts ...ManagerOption) (*Manager, error) {
	m := &Manager{src: src, debounce: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(m)
	}
	m.log = logging.OrDiscard(m.log).WithComponent("config")

	cfg, err := Load(src)
	m.cfg = cfg
	return m, err
}

// Config returns the current configuration.
func (m *Manager) Config() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cfg
}

// OnChange registers fn to be called with the new configuration after
// every successful reload that changed it.
func (m *Manager) OnChange(fn func(Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, fn)
}

// Reload reads every source again. On error the current configuration is
// kept.
func (m *Manager) Reload() error {
	cfg, err := Load(m.src)
	if err != nil {
		return err
	}

	m.mu.Lock()
	changed := cfg != m.cfg
	m.cfg = cfg
	observers := append(([]func(Config))(nil), m.observers...)
	m.mu.Unlock()

	if changed {
		m.log.Debug("configuration reloaded")
		for _, fn := range observers {
			fn(cfg)
		}
	}
	return nil
}

// Watch starts reloading whenever a configuration file changes. Calling it
// again is a no-op.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.w != nil {
		return nil
	}

	w, err := watcher.New(watcher.WithDebounce(m.debounce), watcher.WithLogger(m.log))
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	for _, path := range m.src.Files() {
		if err := w.Watch(path); err != nil {
			_ = w.Close()
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
	w.OnChange(func(ev watcher.Event) {
		m.log.Debug("%s %s", ev.Op, ev.Path)
		if err := m.Reload(); err != nil {
			m.log.Warn("reload failed, keeping previous config: %v", err)
		}
	})
	m.w = w
	return nil
}

// Close stops watching. The manager keeps serving its last configuration.
func (m *Manager) Close() error {
	m.mu.Lock()
	w := m.w
	m.w = nil
	m.mu.Unlock()
	if w == nil {
		return nil
	}
	return w.Close()
}
