package commands

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ccollicutt/loglens/pkg/config"
)

const nativeLogFixture = `2024-01-15 10:30:00 INFO Server started
2024-01-15 10:31:00 INFO Listening on :8080
2024-01-15 10:32:00 ERROR Connection refused
`

const isoLogFixture = `2024-01-15T10:30:00Z INFO Server started
2024-01-15T10:31:00Z INFO Listening on :8080
2024-01-15T10:32:00Z ERROR Connection refused
`

func TestRunInspect_NativeFile(t *testing.T) {
	logPath := writeTempLog(t, "app.log", nativeLogFixture)

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{logPath})

	output := captureStdout(t, func() {
		if err := cmd.ExecuteContext(context.Background()); err != nil {
			t.Errorf("Inspect failed: %v", err)
		}
	})

	if !strings.Contains(output, "Native compatibility: 100.0%") {
		t.Errorf("Expected full native compatibility, got:\n%s", output)
	}
	if !strings.Contains(output, "This file can be analyzed directly.") {
		t.Errorf("Expected direct analysis verdict, got:\n%s", output)
	}
}

func TestRunInspect_ISOFile(t *testing.T) {
	logPath := writeTempLog(t, "app.log", isoLogFixture)

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{logPath})

	output := captureStdout(t, func() {
		if err := cmd.ExecuteContext(context.Background()); err != nil {
			t.Errorf("Inspect failed: %v", err)
		}
	})

	if !strings.Contains(output, "does not use the native") {
		t.Errorf("Expected incompatibility verdict, got:\n%s", output)
	}
	if !strings.Contains(output, "ISO 8601") {
		t.Errorf("Expected ISO 8601 as closest format, got:\n%s", output)
	}
	if !strings.Contains(output, "Convert timestamps") {
		t.Errorf("Expected conversion hint, got:\n%s", output)
	}
}

func TestRunInspect_MissingFile(t *testing.T) {
	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"/nonexistent/app.log"})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "log file not found") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRunInspect_JSON(t *testing.T) {
	logPath := writeTempLog(t, "app.log", isoLogFixture)

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"-o", "json", logPath})

	output := captureStdout(t, func() {
		if err := cmd.ExecuteContext(context.Background()); err != nil {
			t.Errorf("Inspect failed: %v", err)
		}
	})

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(output), &payload); err != nil {
		t.Fatalf("Invalid JSON output: %v\n%s", err, output)
	}

	if payload["file"] != logPath {
		t.Errorf("file = %v, want %s", payload["file"], logPath)
	}
	if payload["compatible"] != false {
		t.Errorf("compatible = %v, want false", payload["compatible"])
	}
	if payload["sampled_lines"] != float64(3) {
		t.Errorf("sampled_lines = %v, want 3", payload["sampled_lines"])
	}

	matches, ok := payload["matches"].([]interface{})
	if !ok || len(matches) == 0 {
		t.Fatalf("Expected at least one match, got: %v", payload["matches"])
	}
	// Without --all, only the best match is reported
	if len(matches) != 1 {
		t.Errorf("got %d matches, want 1", len(matches))
	}
}

func TestRunInspect_WriteConfig(t *testing.T) {
	logPath := writeTempLog(t, "app.log", nativeLogFixture)
	configPath := filepath.Join(t.TempDir(), "loglens.yaml")

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"-w", configPath, logPath})

	output := captureStdout(t, func() {
		if err := cmd.ExecuteContext(context.Background()); err != nil {
			t.Errorf("Inspect failed: %v", err)
		}
	})

	if !strings.Contains(output, "Wrote starter config to:") {
		t.Errorf("Expected write confirmation, got:\n%s", output)
	}

	// The generated file must load back as valid configuration
	cfg, err := config.Load(context.Background(), configPath)
	if err != nil {
		t.Fatalf("Generated config does not load: %v", err)
	}
	if cfg.Detection.ErrorClusterWindow != config.DefaultErrorClusterWindow {
		t.Errorf("error_cluster_window = %v, want default %v",
			cfg.Detection.ErrorClusterWindow, config.DefaultErrorClusterWindow)
	}
	if cfg.Detection.AnomalyThreshold != config.DefaultAnomalyThreshold {
		t.Errorf("anomaly_threshold = %v, want default %v",
			cfg.Detection.AnomalyThreshold, config.DefaultAnomalyThreshold)
	}
}

func TestRunInspect_WriteConfigExisting(t *testing.T) {
	logPath := writeTempLog(t, "app.log", nativeLogFixture)
	configPath := filepath.Join(t.TempDir(), "loglens.yaml")
	if err := os.WriteFile(configPath, []byte("# existing\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"-w", configPath, logPath})

	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("Expected error for existing config file")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Unexpected error: %v", err)
	}
}
