package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/simopts/internal/config"
	"github.com/san-kum/simopts/internal/editor"
	"github.com/san-kum/simopts/internal/listener"
)

func newValidateCmd(t *testing.T, n string) *cobra.Command {
	t.Helper()
	dir := t.TempDir()
	optionsFile = filepath.Join(dir, "simopts.yaml")
	prefsBackend = "memory"
	prefsPath = ""
	logLevel = "error"
	configFile = ""

	cmd := &cobra.Command{Use: "validate"}
	cmd.SetContext(context.Background())
	cmd.Flags().IntVar(&workers, "workers", listener.DefaultWorkers, "")
	if n != "" {
		if err := cmd.Flags().Set("workers", n); err != nil {
			t.Fatal(err)
		}
	}
	return cmd
}

func TestRunSession_PassesConfig(t *testing.T) {
	cmd := newValidateCmd(t, "2")

	var got *config.Config
	err := runSession(cmd, false, func(s *editor.Session, cfg *config.Config) error {
		got = cfg
		return nil
	})
	if err != nil {
		t.Fatalf("runSession: %v", err)
	}
	if got == nil {
		t.Fatal("config was not passed to the session callback")
	}
	if got.Validation.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", got.Validation.Workers)
	}
	if got.OptionsPath != optionsFile {
		t.Errorf("expected options path %s, got %s", optionsFile, got.OptionsPath)
	}
}

func TestLoadConfig_WorkersDefault(t *testing.T) {
	cmd := newValidateCmd(t, "")

	cfg, err := loadConfig(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Validation.Workers != config.DefaultWorkers {
		t.Errorf("expected default workers, got %d", cfg.Validation.Workers)
	}
}

func TestValidateListeners_Empty(t *testing.T) {
	cmd := newValidateCmd(t, "1")
	if err := validateListeners(cmd, nil); err != nil {
		t.Errorf("empty list should validate: %v", err)
	}
}
