package config

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/dshills/viewlines/internal/linebreak"
	"github.com/dshills/viewlines/internal/logging"
)

// Word wrap modes.
const (
	WordWrapOff     = "off"
	WordWrapOn      = "on"             // wrap at the viewport width
	WordWrapColumn  = "wordWrapColumn" // wrap at WrappingColumn
	WordWrapBounded = "bounded"        // wrap at the smaller of the two
)

var (
	wordWrapModes      = []string{WordWrapOff, WordWrapOn, WordWrapColumn, WordWrapBounded}
	wrappingIndents    = []string{"none", "same", "indent", "deepIndent"}
	wordBreaks         = []string{"normal", "keepAll"}
	wrappingStrategies = []string{"simple", "advanced"}
	logLevels          = []string{"debug", "info", "warn", "error"}
)

// ViewConfig holds the settings that shape view lines.
type ViewConfig struct {
	TabSize                int
	WordWrap               string
	WrappingColumn         int
	WrappingIndent         string
	WordBreak              string
	WrappingStrategy       string
	WrapOnEscapedLineFeeds bool

	// ViewportWidth is the width in cells available for text. 0 means
	// unknown, which disables viewport-based wrapping.
	ViewportWidth int
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string
}

// Config is the complete viewlines configuration.
type Config struct {
	View    ViewConfig
	Logging LoggingConfig
}

// Default returns the built-in configuration: no wrapping, tab size 4.
func Default() Config {
	return Config{
		View: ViewConfig{
			TabSize:          4,
			WordWrap:         WordWrapOff,
			WrappingColumn:   80,
			WrappingIndent:   "same",
			WordBreak:        "normal",
			WrappingStrategy: "simple",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Validate checks every setting and returns all failures joined.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, path, msg string, value any) {
		if !ok {
			errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
		}
	}
	oneOf := func(path string, value string, allowed []string) {
		check(slices.Contains(allowed, value), path, "must be one of "+joinQuoted(allowed), value)
	}

	v := c.View
	check(v.TabSize >= 1 && v.TabSize <= 32, "view.tabSize", "must be between 1 and 32", v.TabSize)
	oneOf("view.wordWrap", v.WordWrap, wordWrapModes)
	check(v.WrappingColumn >= 0, "view.wrappingColumn", "must not be negative", v.WrappingColumn)
	if v.WordWrap == WordWrapColumn || v.WordWrap == WordWrapBounded {
		check(v.WrappingColumn > 0, "view.wrappingColumn", "must be positive when wrapping at a column", v.WrappingColumn)
	}
	oneOf("view.wrappingIndent", v.WrappingIndent, wrappingIndents)
	oneOf("view.wordBreak", v.WordBreak, wordBreaks)
	oneOf("view.wrappingStrategy", v.WrappingStrategy, wrappingStrategies)
	check(v.ViewportWidth >= 0, "view.viewportWidth", "must not be negative", v.ViewportWidth)
	oneOf("logging.level", c.Logging.Level, logLevels)

	return errors.Join(errs...)
}

// EffectiveWrappingColumn returns the column lines wrap at under the word
// wrap mode, or 0 when lines do not wrap.
func (v ViewConfig) EffectiveWrappingColumn() int {
	switch v.WordWrap {
	case WordWrapOn:
		return v.ViewportWidth
	case WordWrapColumn:
		return v.WrappingColumn
	case WordWrapBounded:
		if v.ViewportWidth <= 0 {
			return v.WrappingColumn
		}
		return min(v.ViewportWidth, v.WrappingColumn)
	default:
		return 0
	}
}

// WrappingOptions converts the view settings to line break options.
func (v ViewConfig) WrappingOptions() linebreak.Options {
	opts := linebreak.DefaultOptions()
	opts.TabSize = v.TabSize
	opts.WrappingColumn = v.EffectiveWrappingColumn()
	opts.WrappingIndent = linebreak.ParseWrappingIndent(v.WrappingIndent)
	opts.WordBreak = linebreak.ParseWordBreak(v.WordBreak)
	opts.Strategy = linebreak.ParseStrategy(v.WrappingStrategy)
	opts.WrapOnEscapedLineFeeds = v.WrapOnEscapedLineFeeds
	return opts
}

// LoggerConfig returns logger settings for the configured level.
func (c Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = logging.ParseLevel(c.Logging.Level)
	return cfg
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return strings.Join(quoted, ", ")
}
