package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"chime/internal/speech"

	"github.com/pelletier/go-toml/v2"
)

const (
	defaultTimeoutSec    = 10
	defaultStateDirLinux = ".local/state/chime"
	defaultConfigDir     = ".config/chime"
)

// Settings holds tool configuration loaded from TOML. This is separate from
// the user preference file: preferences say what to speak, settings tune how
// the tool itself behaves.
type Settings struct {
	Speech struct {
		TimeoutSec float64  `toml:"timeout_sec"`
		Candidates []string `toml:"candidates"`
	} `toml:"speech"`

	Logging struct {
		Enabled bool   `toml:"enabled"`
		Level   string `toml:"level"`  // debug, info, warn, error
		Format  string `toml:"format"` // text, json
		Path    string `toml:"path"`
	} `toml:"logging"`
}

// DefaultSettings returns Settings populated with defaults.
func DefaultSettings() (*Settings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	stateDir := filepath.Join(home, defaultStateDirLinux)
	// macOS prefers ~/Library/Application Support/chime for state/logs
	if isMac() {
		stateDir = filepath.Join(home, "Library", "Application Support", "chime")
	}

	s := &Settings{}

	s.Speech.TimeoutSec = defaultTimeoutSec
	s.Speech.Candidates = append([]string(nil), speech.DefaultCandidates...)

	s.Logging.Enabled = false
	s.Logging.Level = "info"
	s.Logging.Format = "text"
	s.Logging.Path = filepath.Join(stateDir, "chime.log")

	return s, nil
}

// LoadSettings loads settings from file, applying defaults. A missing or
// malformed file is not an error: the hook runs with defaults rather than
// refuse to speak over a bad settings file. The file is never created or
// written.
func LoadSettings(path string) (*Settings, error) {
	s, err := DefaultSettings()
	if err != nil {
		return nil, err
	}

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, defaultConfigDir, "config.toml")
	}

	if data, err := os.ReadFile(path); err == nil {
		if err := toml.Unmarshal(data, s); err != nil {
			// A partial overlay may have landed before the parse error.
			fresh, derr := DefaultSettings()
			if derr != nil {
				return nil, derr
			}
			s = fresh
		}
	}

	applyEnvOverrides(s)
	return s, nil
}

// Timeout returns the speech timeout as a duration.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.Speech.TimeoutSec * float64(time.Second))
}

func isMac() bool {
	return runtime.GOOS == "darwin"
}

func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("CHIME_LOG_ENABLED"); v != "" {
		s.Logging.Enabled = v != "0" && strings.ToLower(v) != "false"
	}
	if v := os.Getenv("CHIME_LOG_LEVEL"); v != "" {
		s.Logging.Level = v
	}
	if v := os.Getenv("CHIME_LOG_FORMAT"); v != "" {
		s.Logging.Format = v
	}
	if v := os.Getenv("CHIME_SPEECH_TIMEOUT_SEC"); v != "" {
		if sec, err := strconv.ParseFloat(v, 64); err == nil && sec > 0 {
			s.Speech.TimeoutSec = sec
		}
	}
}
