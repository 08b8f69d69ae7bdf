// Package doctor diagnoses the hook's environment.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"chime/internal/config"
	"chime/internal/speech"

	"github.com/tidwall/gjson"
)

// Result represents a diagnostic check.
type Result struct {
	Name   string `json:"name"`
	Pass   bool   `json:"pass"`
	Detail string `json:"detail"`
}

// Run executes doctor checks against the preference file and the speech
// command candidates.
func Run(prefsPath string, settings *config.Settings) []Result {
	results := []Result{checkPrefsFile(prefsPath)}

	prefs := config.LoadPrefs(prefsPath)
	if cmd := prefs.SpeechOverride(); cmd != "" {
		results = append(results, checkOverride(cmd))
	}
	for _, name := range settings.Speech.Candidates {
		results = append(results, checkCandidate(name))
	}
	results = append(results, checkResolution(prefs, settings))
	return results
}

func checkPrefsFile(path string) Result {
	label := "preference file"
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: label, Pass: true, Detail: "not present (defaults apply)"}
		}
		return Result{Name: label, Pass: false, Detail: err.Error()}
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return Result{Name: label, Pass: false, Detail: "not a JSON object; it will be ignored"}
	}
	return Result{Name: label, Pass: true, Detail: path}
}

func checkOverride(cmdStr string) Result {
	label := "speech_command"
	argv, err := speech.NewResolver(nil, nil).Resolve(cmdStr)
	if err != nil {
		return Result{Name: label, Pass: false, Detail: err.Error()}
	}
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return Result{Name: label, Pass: false, Detail: err.Error()}
	}
	return Result{Name: label, Pass: true, Detail: path}
}

func checkCandidate(name string) Result {
	label := fmt.Sprintf("candidate %s", name)
	path, err := exec.LookPath(name)
	if err != nil {
		return Result{Name: label, Pass: false, Detail: "not on PATH"}
	}
	return Result{Name: label, Pass: true, Detail: path}
}

func checkResolution(prefs config.Prefs, settings *config.Settings) Result {
	label := "speech command"
	argv, err := speech.NewResolver(nil, settings.Speech.Candidates).Resolve(prefs.SpeechOverride())
	if err != nil {
		return Result{Name: label, Pass: false, Detail: "none available; set speech_command or install say/spd-say/espeak"}
	}
	return Result{Name: label, Pass: true, Detail: strings.Join(argv, " ")}
}
