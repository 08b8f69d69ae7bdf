// Package speech resolves and invokes the local text-to-speech command.
package speech

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// DefaultCandidates are the platform speech utilities probed, in order,
// when the user has not configured a command of their own.
var DefaultCandidates = []string{"say", "spd-say", "espeak"}

// ErrNoCommand means no usable speech command could be found.
var ErrNoCommand = errors.New("no speech command available")

// Lookup reports the path of an executable, mirroring exec.LookPath.
type Lookup func(name string) (string, error)

// Resolver picks the speech command to invoke.
type Resolver struct {
	lookup     Lookup
	candidates []string
}

// NewResolver builds a Resolver. A nil lookup falls back to exec.LookPath;
// empty candidates fall back to DefaultCandidates.
func NewResolver(lookup Lookup, candidates []string) *Resolver {
	if lookup == nil {
		lookup = exec.LookPath
	}
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	return &Resolver{lookup: lookup, candidates: candidates}
}

// Resolve returns the argv of the speech command. A non-empty override wins
// and may carry its own flags ("say --rate=200"); otherwise the first
// candidate present on the path is used bare.
func (r *Resolver) Resolve(override string) ([]string, error) {
	if cmd := strings.TrimSpace(override); cmd != "" {
		argv, err := shlex.Split(cmd)
		if err != nil {
			return nil, fmt.Errorf("split speech_command %q: %w", cmd, err)
		}
		if len(argv) == 0 {
			return nil, ErrNoCommand
		}
		return argv, nil
	}
	for _, name := range r.candidates {
		if _, err := r.lookup(name); err == nil {
			return []string{name}, nil
		}
	}
	return nil, ErrNoCommand
}
