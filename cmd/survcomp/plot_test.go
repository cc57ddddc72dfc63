package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/torchastro/survcomp/internal/config"
)

// TestNewPlotCmd tests the plot command creation.
func TestNewPlotCmd(t *testing.T) {
	t.Parallel()

	cmd := NewPlotCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "plot <variant>" {
			t.Errorf("expected use 'plot <variant>', got %q", cmd.Use)
		}
	})

	t.Run("has short description", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" {
			t.Error("expected non-empty short description")
		}
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		t.Parallel()
		if cmd.Args == nil {
			t.Fatal("expected Args validator")
		}
		if err := cmd.Args(cmd, []string{}); err == nil {
			t.Error("expected an error for zero arguments")
		}
		if err := cmd.Args(cmd, []string{"3"}); err != nil {
			t.Errorf("expected one argument to be accepted, got %v", err)
		}
	})

	t.Run("has suffix flags", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("ben") == nil {
			t.Error("expected ben flag")
		}
		if cmd.Flags().Lookup("harry") == nil {
			t.Error("expected harry flag")
		}
	})

	t.Run("has config flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("config")
		if flag == nil {
			t.Fatal("expected config flag")
		}
		if flag.Shorthand != "c" {
			t.Errorf("expected shorthand 'c', got %q", flag.Shorthand)
		}
	})

	t.Run("has output flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.Shorthand != "o" {
			t.Errorf("expected shorthand 'o', got %q", flag.Shorthand)
		}
	})

	t.Run("has format flag with png default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("format")
		if flag == nil {
			t.Fatal("expected format flag")
		}
		if flag.DefValue != "png" {
			t.Errorf("expected default 'png', got %q", flag.DefValue)
		}
	})

	t.Run("has no-history flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("no-history") == nil {
			t.Error("expected no-history flag")
		}
	})
}

// TestPlotCmdWritesFigure runs the plot command end to end on a small
// fixture data directory.
func TestPlotCmdWritesFigure(t *testing.T) {
	t.Parallel()

	dataDir := writeTestData(t, 3)
	outPath := filepath.Join(t.TempDir(), "figure.png")

	root := NewRootCmd()
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{
		"plot", "3",
		"--data-dir", dataDir,
		"--no-history",
		"-o", outPath,
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("plot command failed: %v", err)
	}

	info, err := os.Stat(outPath)
	if err != nil {
		t.Fatalf("expected figure at %s: %v", outPath, err)
	}
	if info.Size() == 0 {
		t.Error("expected a non-empty figure")
	}
	if !strings.Contains(stdout.String(), outPath) {
		t.Errorf("expected confirmation naming %s, got %q", outPath, stdout.String())
	}
}

// TestPlotCmdDefaultOutput writes the figure into the variant's set
// directory when no explicit output is given.
func TestPlotCmdDefaultOutput(t *testing.T) {
	t.Parallel()

	dataDir := writeTestData(t, 3)

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"plot", "3", "--data-dir", dataDir, "--no-history"})

	if err := root.Execute(); err != nil {
		t.Fatalf("plot command failed: %v", err)
	}

	want := filepath.Join(dataDir, "set3", "hist-locations.png")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("expected figure at %s: %v", want, err)
	}
}

// TestPlotCmdErrors covers argument and configuration failures.
func TestPlotCmdErrors(t *testing.T) {
	t.Parallel()

	t.Run("rejects both suffix flags", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"plot", "3", "--ben", "--harry"})

		err := root.Execute()
		if !errors.Is(err, config.ErrConflictingSuffixes) {
			t.Errorf("expected ErrConflictingSuffixes, got %v", err)
		}
	})

	t.Run("rejects a non-integer variant", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"plot", "three"})

		if err := root.Execute(); err == nil {
			t.Error("expected an error for a non-integer variant")
		}
	})

	t.Run("rejects a missing explicit config file", func(t *testing.T) {
		t.Parallel()

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"plot", "3", "-c", filepath.Join(t.TempDir(), "absent.yaml")})

		if err := root.Execute(); err == nil {
			t.Error("expected an error for a missing config file")
		}
	})

	t.Run("reports a missing survey table", func(t *testing.T) {
		t.Parallel()

		dataDir := writeTestData(t, 3)

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"plot", "4", "--data-dir", dataDir, "--no-history"})

		if err := root.Execute(); err == nil {
			t.Error("expected an error for a variant without a survey table")
		}
	})
}

// TestBuildConfigFromFile merges a configuration file beneath the flags.
func TestBuildConfigFromFile(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), "survcomp.yaml")
	writeTestFile(t, cfgPath, "data_dir: /srv/cornish\nfigure:\n  dpi: 150\n  format: jpg\n")

	t.Run("file values apply", func(t *testing.T) {
		t.Parallel()

		cmd := NewPlotCmd()
		if err := cmd.ParseFlags([]string{"-c", cfgPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd, []string{"2"})
		if err != nil {
			t.Fatalf("failed to build config: %v", err)
		}
		if cfg.DataDir != "/srv/cornish" {
			t.Errorf("expected data dir from file, got %q", cfg.DataDir)
		}
		if cfg.Figure.DPI != 150 {
			t.Errorf("expected dpi 150, got %d", cfg.Figure.DPI)
		}
		if cfg.Figure.Format != "jpg" {
			t.Errorf("expected format jpg, got %q", cfg.Figure.Format)
		}
	})

	t.Run("flags override the file", func(t *testing.T) {
		t.Parallel()

		cmd := NewPlotCmd()
		if err := cmd.ParseFlags([]string{"-c", cfgPath, "--dpi", "72", "--data-dir", "/tmp/other"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd, []string{"2"})
		if err != nil {
			t.Fatalf("failed to build config: %v", err)
		}
		if cfg.Figure.DPI != 72 {
			t.Errorf("expected dpi 72 from flag, got %d", cfg.Figure.DPI)
		}
		if cfg.DataDir != "/tmp/other" {
			t.Errorf("expected data dir from flag, got %q", cfg.DataDir)
		}
	})
}
