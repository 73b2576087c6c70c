package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/xvierd/pomo/internal/domain"
)

// ErrUnknownKey is returned by Get and Set for keys outside Keys().
var ErrUnknownKey = errors.New("unknown config key")

// Suggest returns the closest known key to key, or "" if nothing matches.
func Suggest(key string) string {
	matches := fuzzy.Find(key, Keys())
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func unknownKey(key string) error {
	if s := Suggest(key); s != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownKey, key, s)
	}
	return fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// Get returns the value of key formatted for display.
func (c *Config) Get(key string) (string, error) {
	v, ok := c.values()[key]
	if !ok {
		return "", unknownKey(key)
	}
	return fmt.Sprint(v), nil
}

// Set parses value and assigns it to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "profile":
		p, err := domain.ValidateProfile(value)
		if err != nil {
			return err
		}
		c.Profile = string(p)
	case "theme.color_work":
		c.Theme.ColorWork = value
	case "theme.color_rest":
		c.Theme.ColorRest = value
	case "theme.color_paused":
		c.Theme.ColorPaused = value
	case "theme.color_title":
		c.Theme.ColorTitle = value
	case "theme.color_help":
		c.Theme.ColorHelp = value
	case "theme.ring_radius":
		n, err := strconv.Atoi(value)
		if err != nil || n < 2 {
			return fmt.Errorf("invalid ring radius %q: must be an integer >= 2", value)
		}
		c.Theme.RingRadius = n
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		c.History.Enabled = b
	case "git.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q for %s", value, key)
		}
		c.Git.Enabled = b
	case "storage.data_dir":
		c.Storage.DataDir = value
	case "log.level":
		if _, err := ParseLevel(value); err != nil {
			return err
		}
		c.Log.Level = value
	case "log.file":
		c.Log.File = value
	default:
		return unknownKey(key)
	}
	return nil
}
