package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tanks/internal/core"
)

func TestMapCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maze.txt")
	src := "13\n" + strings.Repeat("1 0 0 0 0 0 0 0 0 0 0 0 0\n", 13)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"map", path, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("map command failed: %v", err)
	}
	text := out.String()
	if !strings.HasPrefix(text, "#............\n") {
		t.Errorf("unexpected map output:\n%s", text)
	}
	if !strings.Contains(text, "13x13 tiles of 65px, 13 walls") {
		t.Errorf("missing summary line:\n%s", text)
	}
}

func TestMapCommandReportsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("13\n1 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"map", path, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	err := rootCmd.Execute()
	if err == nil || !strings.Contains(err.Error(), path+":2") {
		t.Errorf("expected error pointing at %s:2, got %v", path, err)
	}
}

func TestPrintOutcome(t *testing.T) {
	tests := []struct {
		state core.GameState
		want  string
	}{
		{core.GameState{Won: true, Score: 300}, "You won! Score: 300\n"},
		{core.GameState{GameOver: true, Score: 100}, "Game over. Score: 100\n"},
		{core.GameState{}, "Match abandoned. Score: 0\n"},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		printOutcome(&buf, tc.state)
		if buf.String() != tc.want {
			t.Errorf("printOutcome(%+v) = %q, expected %q", tc.state, buf.String(), tc.want)
		}
	}
}
