package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/sevens/internal/config"
)

// execute runs the root command with a copy of the default rules so the
// tests never read a user's config.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sevens.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", path, "--log-level", "error", "--difficulty", "normal"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, id := range []string{"sevens", "sevens8", "sevens9", "sevens10"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
	if i, j := strings.Index(out, "9x9"), strings.Index(out, "10x10"); i < 0 || j < i {
		t.Errorf("list should show board sizes, smallest first:\n%s", out)
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard")
	if err != nil {
		t.Fatalf("config error: %v", err)
	}
	if !strings.Contains(out, "colors: 6") {
		t.Errorf("hard preset not applied:\n%s", out)
	}
	if !strings.Contains(out, "lines_per_level: 40") {
		t.Errorf("config output missing rules:\n%s", out)
	}
}

func TestConfigCommandBadDifficulty(t *testing.T) {
	if _, err := execute(t, "config", "--difficulty", "nightmare"); err == nil {
		t.Error("unknown difficulty should fail")
	}
}

func TestAutoplayCommand(t *testing.T) {
	out, err := execute(t, "autoplay", "--games", "2", "--seed", "5", "--max-moves", "4", "--size", "0")
	if err != nil {
		t.Fatalf("autoplay error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 3 || !strings.HasPrefix(lines[0], "GAME") {
		t.Fatalf("unexpected autoplay output:\n%s", out)
	}
	if !strings.Contains(lines[1], "5") || !strings.Contains(lines[2], "6") {
		t.Errorf("games should use seed and seed+1:\n%s", out)
	}
	if !strings.Contains(out, "Average score") {
		t.Errorf("summary missing:\n%s", out)
	}
}

func TestAutoplayRejectsBadSize(t *testing.T) {
	if _, err := execute(t, "autoplay", "--games", "1", "--size", "3", "--max-moves", "1"); err == nil {
		t.Error("size below the minimum should fail")
	}
}
