package hook

import (
	"context"
	"io"

	"chime/internal/config"
	"chime/internal/speech"

	"github.com/sirupsen/logrus"
)

// Exit codes forming the hook's contract with the host. Every fatal
// condition shares ExitFailure; success and deliberate no-ops share ExitOK.
const (
	ExitOK      = 0
	ExitFailure = 2
)

// Runner wires the pipeline stages together.
type Runner struct {
	prefsPath string
	resolver  *speech.Resolver
	speaker   *speech.Speaker
	logger    *logrus.Logger
}

func NewRunner(prefsPath string, resolver *speech.Resolver, speaker *speech.Speaker, logger *logrus.Logger) *Runner {
	return &Runner{
		prefsPath: prefsPath,
		resolver:  resolver,
		speaker:   speaker,
		logger:    logger,
	}
}

// Run executes one hook invocation and returns the process exit code. The
// audio_off check comes first so that disabling audio costs nothing and
// never depends on stdin being well-formed.
func (r *Runner) Run(ctx context.Context, stdin io.Reader) int {
	prefs := config.LoadPrefs(r.prefsPath)
	if prefs.AudioDisabled() {
		r.logger.Debug("audio disabled, skipping")
		return ExitOK
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		r.logger.Errorf("read stdin: %v", err)
		return ExitFailure
	}
	ev, err := Parse(data)
	if err != nil {
		r.logger.Errorf("parse event: %v", err)
		return ExitFailure
	}
	if !ev.IsNotification() {
		r.logger.Debugf("ignoring %q event", ev.Name)
		return ExitOK
	}

	argv, err := r.resolver.Resolve(prefs.SpeechOverride())
	if err != nil {
		r.logger.Errorf("resolve speech command: %v", err)
		return ExitFailure
	}
	if err := r.speaker.Speak(ctx, argv, ev.Message); err != nil {
		r.logger.Errorf("speak: %v", err)
		return ExitFailure
	}
	r.logger.Infof("spoke notification via %s", argv[0])
	return ExitOK
}
