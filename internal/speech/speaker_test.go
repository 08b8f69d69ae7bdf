package speech_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chime/internal/logging"
	"chime/internal/speech"
)

func TestSpeakEcho(t *testing.T) {
	s := speech.NewSpeaker(time.Second, logging.NewTestLogger())
	if err := s.Speak(context.Background(), []string{"/bin/echo"}, "hello"); err != nil {
		t.Fatalf("speak echo: %v", err)
	}
}

func TestSpeakAppendsMessageLast(t *testing.T) {
	dir := t.TempDir()
	outFile := filepath.Join(dir, "args.txt")
	script := fmt.Sprintf("#!/bin/sh\nfor a in \"$@\"; do echo \"$a\"; done > %s\n", outFile)
	stub := filepath.Join(dir, "speak.sh")
	if err := os.WriteFile(stub, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	s := speech.NewSpeaker(time.Second, logging.NewTestLogger())
	if err := s.Speak(context.Background(), []string{stub, "--rate=200"}, "Build finished"); err != nil {
		t.Fatalf("speak: %v", err)
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("stub output: %v", err)
	}
	if string(data) != "--rate=200\nBuild finished\n" {
		t.Fatalf("unexpected args: %q", data)
	}
}

func TestSpeakBackgroundChildDoesNotBlock(t *testing.T) {
	dir := t.TempDir()
	stub := filepath.Join(dir, "forker.sh")
	if err := os.WriteFile(stub, []byte("#!/bin/sh\nsleep 5 &\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}

	s := speech.NewSpeaker(500*time.Millisecond, logging.NewTestLogger())
	start := time.Now()
	if err := s.Speak(context.Background(), []string{stub}, "hello"); err != nil {
		t.Fatalf("clean exit with a background child should succeed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("speak blocked on background child's pipes: %v", elapsed)
	}
}

func TestSpeakTimeout(t *testing.T) {
	s := speech.NewSpeaker(100*time.Millisecond, logging.NewTestLogger())
	start := time.Now()
	err := s.Speak(context.Background(), []string{"/bin/sh", "-c", "sleep 5"}, "ignored")
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("child was not killed promptly: %v", elapsed)
	}
}

func TestSpeakNonZeroExit(t *testing.T) {
	s := speech.NewSpeaker(time.Second, logging.NewTestLogger())
	if err := s.Speak(context.Background(), []string{"/bin/sh", "-c", "exit 3"}, "ignored"); err == nil {
		t.Fatalf("non-zero exit should be an error")
	}
}

func TestSpeakLaunchFailure(t *testing.T) {
	s := speech.NewSpeaker(time.Second, logging.NewTestLogger())
	if err := s.Speak(context.Background(), []string{"/nonexistent/speech-binary"}, "ignored"); err == nil {
		t.Fatalf("launch failure should be an error")
	}
}

func TestSpeakEmptyArgv(t *testing.T) {
	s := speech.NewSpeaker(time.Second, logging.NewTestLogger())
	if err := s.Speak(context.Background(), nil, "ignored"); !errors.Is(err, speech.ErrNoCommand) {
		t.Fatalf("expected speech.ErrNoCommand, got %v", err)
	}
}
