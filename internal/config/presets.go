package config

import (
	"fmt"
	"sort"
	"strings"
)

// PatternPreset names a reusable format pattern
type PatternPreset struct {
	Name        string
	Pattern     string
	Description string
	BuiltIn     bool
}

// Predefined pattern presets
var (
	PresetISO = PatternPreset{
		Name:        "iso",
		Pattern:     "YYYY-MM-DD",
		Description: "ISO 8601 calendar date",
		BuiltIn:     true,
	}

	PresetDateTime = PatternPreset{
		Name:        "datetime",
		Pattern:     "YYYY-MM-DD HH:mm:ss",
		Description: "date and 24-hour time",
		BuiltIn:     true,
	}

	PresetTime = PatternPreset{
		Name:        "time",
		Pattern:     "HH:mm:ss",
		Description: "24-hour time",
		BuiltIn:     true,
	}

	PresetUS = PatternPreset{
		Name:        "us",
		Pattern:     "MM/DD/YYYY",
		Description: "US month-first date",
		BuiltIn:     true,
	}

	PresetUK = PatternPreset{
		Name:        "uk",
		Pattern:     "DD/MM/YYYY",
		Description: "UK/EU day-first date",
		BuiltIn:     true,
	}

	PresetCompact = PatternPreset{
		Name:        "compact",
		Pattern:     "YYYYMMDDHHmmss",
		Description: "sortable timestamp without separators",
		BuiltIn:     true,
	}

	PresetRFC3339 = PatternPreset{
		Name:        "rfc3339",
		Pattern:     "YYYY-MM-DDTHH:mm:ss",
		Description: "RFC 3339 without zone",
		BuiltIn:     true,
	}

	PresetFilename = PatternPreset{
		Name:        "filename",
		Pattern:     "YYYY-MM-DD_HH-mm-ss",
		Description: "safe for file names",
		BuiltIn:     true,
	}
)

var predefinedPresets = map[string]PatternPreset{
	"iso":      PresetISO,
	"date":     PresetISO, // Alias
	"datetime": PresetDateTime,
	"time":     PresetTime,
	"us":       PresetUS,
	"uk":       PresetUK,
	"eu":       PresetUK, // Alias
	"compact":  PresetCompact,
	"rfc3339":  PresetRFC3339,
	"filename": PresetFilename,
}

// GetPredefinedPreset returns a built-in preset by name
func GetPredefinedPreset(name string) (*PatternPreset, error) {
	preset, ok := predefinedPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}
	return &preset, nil
}

// ResolvePattern turns a preset name or literal pattern into a pattern.
// User presets take precedence over built-ins; anything else is returned
// unchanged as a literal pattern. The boolean reports whether a preset matched.
func (c *Config) ResolvePattern(nameOrPattern string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(nameOrPattern))

	for name, pattern := range c.Presets {
		if strings.ToLower(name) == key {
			return pattern, true
		}
	}

	if preset, err := GetPredefinedPreset(key); err == nil {
		return preset.Pattern, true
	}

	return nameOrPattern, false
}

// DefaultFormatPattern resolves the configured default pattern
func (c *Config) DefaultFormatPattern() string {
	pattern, _ := c.ResolvePattern(c.DefaultPattern)
	return pattern
}

// AllPresets lists user presets followed by built-ins, each sorted by name.
// Built-ins shadowed by a user preset of the same name are omitted.
func (c *Config) AllPresets() []PatternPreset {
	user := make([]PatternPreset, 0, len(c.Presets))
	shadowed := make(map[string]bool, len(c.Presets))
	for name, pattern := range c.Presets {
		user = append(user, PatternPreset{Name: name, Pattern: pattern, Description: "user preset"})
		shadowed[strings.ToLower(name)] = true
	}
	sort.Slice(user, func(i, j int) bool { return user[i].Name < user[j].Name })

	builtIn := make([]PatternPreset, 0, len(predefinedPresets))
	for name, preset := range predefinedPresets {
		if shadowed[name] {
			continue
		}
		preset.Name = name
		builtIn = append(builtIn, preset)
	}
	sort.Slice(builtIn, func(i, j int) bool { return builtIn[i].Name < builtIn[j].Name })

	return append(user, builtIn...)
}
