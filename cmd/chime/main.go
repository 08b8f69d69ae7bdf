package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"chime/internal/config"
	"chime/internal/doctor"
	"chime/internal/hook"
	"chime/internal/logging"
	"chime/internal/speech"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	os.Exit(run())
}

func run() int {
	exitCode := hook.ExitOK

	root := &cobra.Command{
		Use:   "chime",
		Short: "Chime — audio notification hook",
		Long: `Chime is a notification hook: the host pipes a JSON lifecycle event to
stdin, and when the event is a Notification its message is spoken aloud via a
local text-to-speech command (say, spd-say, or espeak by default).

Preferences (~/.claude/audio_notifications.json):
  {"audio_off": true}                 silence every notification
  {"speech_command": "say -v Moira"}  use your own command (message appended)

Exit codes on the hook path: 0 = spoken or deliberate no-op, 2 = failure.`,
		Example: `  echo '{"hook_event_name":"Notification","message":"Build finished"}' | chime
  chime say "testing one two"
  chime doctor`,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		SilenceErrors:         true,
	}

	root.Version = version
	root.SetVersionTemplate("Chime v{{.Version}}\n")
	root.CompletionOptions.DisableDefaultCmd = true

	prefsPath := root.PersistentFlags().String("prefs", "", "Path to the preference file. Defaults to ~/.claude/audio_notifications.json")
	cfgPath := root.PersistentFlags().StringP("config", "c", "", "Path to the settings file (TOML). Defaults to ~/.config/chime/config.toml")

	// Bare invocation is the hook itself; hosts register just the binary.
	root.RunE = func(cmd *cobra.Command, args []string) error {
		exitCode = runHook(cmd.Context(), *prefsPath, *cfgPath)
		return nil
	}

	root.AddCommand(newSayCmd(prefsPath, cfgPath, &exitCode))
	root.AddCommand(newDoctorCmd(prefsPath, cfgPath, &exitCode))

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if exitCode == hook.ExitOK {
			exitCode = 1
		}
	}
	return exitCode
}

func runHook(ctx context.Context, prefsPath, cfgPath string) int {
	settings, err := config.LoadSettings(cfgPath)
	if err != nil {
		return hook.ExitFailure
	}
	logger := logging.Configure(settings)
	if prefsPath == "" {
		if prefsPath, err = config.PrefsPath(); err != nil {
			return hook.ExitFailure
		}
	}
	resolver := speech.NewResolver(nil, settings.Speech.Candidates)
	speaker := speech.NewSpeaker(settings.Timeout(), logger)
	return hook.NewRunner(prefsPath, resolver, speaker, logger).Run(ctx, os.Stdin)
}

// newSayCmd speaks text directly, bypassing stdin. Handy for testing a
// configured speech_command without crafting a hook payload.
func newSayCmd(prefsPath, cfgPath *string, exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>",
		Short: "Speak text directly, bypassing stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(*cfgPath)
			if err != nil {
				return err
			}
			logger := logging.Configure(settings)
			path := *prefsPath
			if path == "" {
				if path, err = config.PrefsPath(); err != nil {
					return err
				}
			}
			prefs := config.LoadPrefs(path)
			argv, err := speech.NewResolver(nil, settings.Speech.Candidates).Resolve(prefs.SpeechOverride())
			if err != nil {
				*exitCode = hook.ExitFailure
				return err
			}
			if err := speech.NewSpeaker(settings.Timeout(), logger).Speak(cmd.Context(), argv, strings.TrimSpace(args[0])); err != nil {
				*exitCode = hook.ExitFailure
				return err
			}
			return nil
		},
	}
}

// newDoctorCmd checks the preference file and speech command availability.
func newDoctorCmd(prefsPath, cfgPath *string, exitCode *int) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check preference file and speech command availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings(*cfgPath)
			if err != nil {
				return err
			}
			path := *prefsPath
			if path == "" {
				if path, err = config.PrefsPath(); err != nil {
					return err
				}
			}
			results := doctor.Run(path, settings)
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				if err := json.NewEncoder(cmd.OutOrStdout()).Encode(results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					mark := "ok"
					if !r.Pass {
						mark = "FAIL"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%-4s %-18s %s\n", mark, r.Name, r.Detail)
				}
			}
			for _, r := range results {
				if !r.Pass {
					*exitCode = 1
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "output JSON")
	return cmd
}
