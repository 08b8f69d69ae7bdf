package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Preference file location, relative to the home directory. The file is
// owned by the user and shared with other tooling under ~/.claude.
const prefsRelPath = ".claude/audio_notifications.json"

// Prefs holds the user's notification preferences. Both fields are
// tri-state: nil means the user never set them.
type Prefs struct {
	AudioOff      *bool
	SpeechCommand *string
}

// PrefsPath returns the well-known preference file location.
func PrefsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, prefsRelPath), nil
}

// LoadPrefs reads the preference file at path. It never fails: a missing or
// unreadable file, invalid JSON, a non-object document, or a mistyped field
// all leave the corresponding defaults in place. Fields are copied only when
// their JSON type matches (audio_off boolean, speech_command string).
func LoadPrefs(path string) Prefs {
	var p Prefs

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if !gjson.ValidBytes(data) {
		return p
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return p
	}

	if v := root.Get("audio_off"); v.Type == gjson.True || v.Type == gjson.False {
		off := v.Bool()
		p.AudioOff = &off
	}
	if v := root.Get("speech_command"); v.Type == gjson.String {
		cmd := strings.TrimSpace(v.String())
		p.SpeechCommand = &cmd
	}
	return p
}

// AudioDisabled reports whether the user explicitly switched audio off.
func (p Prefs) AudioDisabled() bool {
	return p.AudioOff != nil && *p.AudioOff
}

// SpeechOverride returns the user's speech command, or "" when unset.
func (p Prefs) SpeechOverride() string {
	if p.SpeechCommand == nil {
		return ""
	}
	return *p.SpeechCommand
}
