package main

import (
	"testing"

	"github.com/lixenwraith/fruit-catcher/config"
)

func TestRunExitCodes(t *testing.T) {
	t.Chdir(t.TempDir())

	if code := run([]string{"-h"}); code != 0 {
		t.Errorf("run -h = %d, want 0", code)
	}
	if code := run([]string{"-mode", "arcade"}); code != 2 {
		t.Errorf("run with bad mode = %d, want 2", code)
	}
	if code := run([]string{"-time", "-1"}); code != 2 {
		t.Errorf("run with negative time = %d, want 2", code)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := config.Default()
	if n := len(engineOptions(cfg)); n != 1 {
		t.Errorf("options without seed = %d, want 1", n)
	}

	cfg.Seed = 42
	if n := len(engineOptions(cfg)); n != 2 {
		t.Errorf("options with seed = %d, want 2", n)
	}
}
