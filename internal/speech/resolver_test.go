package speech

import (
	"errors"
	"reflect"
	"testing"
)

func fixedLookup(available ...string) Lookup {
	set := make(map[string]bool, len(available))
	for _, name := range available {
		set[name] = true
	}
	return func(name string) (string, error) {
		if set[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("executable file not found in $PATH")
	}
}

func TestResolveOverrideSplits(t *testing.T) {
	r := NewResolver(fixedLookup(), nil)
	argv, err := r.Resolve("say --rate=200")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(argv, []string{"say", "--rate=200"}) {
		t.Fatalf("unexpected argv: %v", argv)
	}
}

func TestResolveOverrideQuoted(t *testing.T) {
	r := NewResolver(fixedLookup(), nil)
	argv, err := r.Resolve(`speak --voice="en US"`)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(argv, []string{"speak", "--voice=en US"}) {
		t.Fatalf("unexpected argv: %v", argv)
	}
}

func TestResolveOverrideUnbalancedQuote(t *testing.T) {
	r := NewResolver(fixedLookup("say"), nil)
	if _, err := r.Resolve(`say "oops`); err == nil {
		t.Fatalf("unbalanced quote should fail resolution")
	}
}

func TestResolveProbeOrder(t *testing.T) {
	r := NewResolver(fixedLookup("spd-say", "espeak"), nil)
	argv, err := r.Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(argv, []string{"spd-say"}) {
		t.Fatalf("expected first available candidate, got %v", argv)
	}
}

func TestResolveNoCommand(t *testing.T) {
	r := NewResolver(fixedLookup(), nil)
	if _, err := r.Resolve(""); !errors.Is(err, ErrNoCommand) {
		t.Fatalf("expected ErrNoCommand, got %v", err)
	}
}

func TestResolveBlankOverrideFallsThrough(t *testing.T) {
	r := NewResolver(fixedLookup("espeak"), nil)
	argv, err := r.Resolve("   ")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(argv, []string{"espeak"}) {
		t.Fatalf("blank override should probe candidates, got %v", argv)
	}
}

func TestResolveCustomCandidates(t *testing.T) {
	r := NewResolver(fixedLookup("espeak-ng"), []string{"espeak-ng", "espeak"})
	argv, err := r.Resolve("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !reflect.DeepEqual(argv, []string{"espeak-ng"}) {
		t.Fatalf("unexpected argv: %v", argv)
	}
}
