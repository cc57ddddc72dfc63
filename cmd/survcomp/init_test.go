package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has output flag with default name", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("output")
		if flag == nil {
			t.Fatal("expected output flag")
		}
		if flag.DefValue != ".survcomp" {
			t.Errorf("expected default '.survcomp', got %q", flag.DefValue)
		}
	})

	t.Run("has force flag", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("force")
		if flag == nil {
			t.Fatal("expected force flag")
		}
		if flag.Shorthand != "f" {
			t.Errorf("expected shorthand 'f', got %q", flag.Shorthand)
		}
	})
}

// TestInitCmd exercises config file generation.
func TestInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("creates the config file", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), ".survcomp")
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"init", "-o", outPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("expected config file at %s: %v", outPath, err)
		}
		for _, want := range []string{"data_dir:", "figure:", "dpi:", "y_max:"} {
			if !strings.Contains(string(content), want) {
				t.Errorf("expected template to contain %q", want)
			}
		}
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), ".survcomp")
		writeTestFile(t, outPath, "data_dir: keep-me\n")

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"init", "-o", outPath})

		if err := root.Execute(); err == nil {
			t.Error("expected an error for an existing config file")
		}

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read config file: %v", err)
		}
		if !strings.Contains(string(content), "keep-me") {
			t.Error("expected the existing file to be preserved")
		}
	})

	t.Run("overwrites with force", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), ".survcomp")
		writeTestFile(t, outPath, "data_dir: old\n")

		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"init", "-o", outPath, "-f"})

		if err := root.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		content, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("failed to read config file: %v", err)
		}
		if strings.Contains(string(content), "data_dir: old") {
			t.Error("expected the file to be replaced")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"init", "-o", outPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}
		if _, err := os.Stat(outPath); err != nil {
			t.Errorf("expected config file at %s: %v", outPath, err)
		}
	})

	t.Run("generated file loads as valid config", func(t *testing.T) {
		t.Parallel()

		outPath := filepath.Join(t.TempDir(), ".survcomp")
		root := NewRootCmd()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs([]string{"init", "-o", outPath})

		if err := root.Execute(); err != nil {
			t.Fatalf("init command failed: %v", err)
		}

		cmd := NewPlotCmd()
		if err := cmd.ParseFlags([]string{"-c", outPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}
		cfg, err := buildConfig(cmd, []string{"1"})
		if err != nil {
			t.Fatalf("failed to build config from generated file: %v", err)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected generated config to validate, got %v", err)
		}
	})
}
