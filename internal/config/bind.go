package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
)

type binder func(c *Config, path string, v any) error

var settings = map[string]binder{
	"view.tabSize":                intSetting(func(c *Config) *int { return &c.View.TabSize }),
	"view.wordWrap":               wordWrapSetting,
	"view.wrappingColumn":         intSetting(func(c *Config) *int { return &c.View.WrappingColumn }),
	"view.wrappingIndent":         stringSetting(func(c *Config) *string { return &c.View.WrappingIndent }),
	"view.wordBreak":              stringSetting(func(c *Config) *string { return &c.View.WordBreak }),
	"view.wrappingStrategy":       stringSetting(func(c *Config) *string { return &c.View.WrappingStrategy }),
	"view.wrapOnEscapedLineFeeds": boolSetting(func(c *Config) *bool { return &c.View.WrapOnEscapedLineFeeds }),
	"view.viewportWidth":          intSetting(func(c *Config) *int { return &c.View.ViewportWidth }),
	"logging.level":               stringSetting(func(c *Config) *string { return &c.Logging.Level }),
}

var sections = []string{"view", "logging"}

// Apply binds a merged settings map onto c. Sections other than view and
// logging are ignored so files can be shared with other tools; unknown keys
// inside them are errors. Every failure is reported, joined.
func (c *Config) Apply(m map[string]any) error {
	var errs []error
	for _, section := range sections {
		raw, ok := m[section]
		if !ok {
			continue
		}
		values, ok := raw.(map[string]any)
		if !ok {
			errs = append(errs, &TypeError{Path: section, Expected: "table", Actual: typeName(raw)})
			continue
		}
		for _, key := range slices.Sorted(maps.Keys(values)) {
			path := section + "." + key
			bind, ok := settings[path]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownSetting, path))
				continue
			}
			if err := bind(c, path, values[key]); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}

func intSetting(field func(*Config) *int) binder {
	return func(c *Config, path string, v any) error {
		n, ok := toInt(v)
		if !ok {
			return &TypeError{Path: path, Expected: "integer", Actual: typeName(v)}
		}
		*field(c) = n
		return nil
	}
}

func stringSetting(field func(*Config) *string) binder {
	return func(c *Config, path string, v any) error {
		s, ok := v.(string)
		if !ok {
			return &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
		}
		*field(c) = s
		return nil
	}
}

func boolSetting(field func(*Config) *bool) binder {
	return func(c *Config, path string, v any) error {
		b, ok := v.(bool)
		if !ok {
			return &TypeError{Path: path, Expected: "bool", Actual: typeName(v)}
		}
		*field(c) = b
		return nil
	}
}

// wordWrapSetting also accepts booleans: true means "on".
func wordWrapSetting(c *Config, path string, v any) error {
	switch v := v.(type) {
	case string:
		c.View.WordWrap = v
	case bool:
		c.View.WordWrap = WordWrapOff
		if v {
			c.View.WordWrap = WordWrapOn
		}
	default:
		return &TypeError{Path: path, Expected: "string", Actual: typeName(v)}
	}
	return nil
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), n <= math.MaxInt
	case float64:
		return int(n), n == math.Trunc(n)
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "integer"
	case float64:
		return "float"
	case map[string]any:
		return "table"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
