// Package integration provides CLI integration tests for garden.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
)

var (
	// gardenBin is the path to the built garden binary.
	gardenBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		goModPath := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(goModPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetGardenBin sets the path to the garden binary (called from TestMain).
func SetGardenBin(path string) {
	gardenBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// testOwner scopes all integration-test data.
const testOwner = "integration-owner"

// TestEnv provides an isolated test environment with its own config and data
// directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build garden: %v", buildErr)
	}
	if gardenBin == "" {
		t.Fatal("garden binary not built (gardenBin is empty)")
	}

	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "data")
	configDir := filepath.Join(tempDir, "config")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "backend: sqlite\ndata_dir: " + dataDir + "\nowner: " + testOwner + "\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
		DataDir: dataDir,
	}
}

// CmdResult holds the result of a garden command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunGarden executes the garden CLI with the given arguments.
func (e *TestEnv) RunGarden(args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(gardenBin, allArgs...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run garden: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunGarden executes the garden CLI and fails the test if it returns
// non-zero.
func (e *TestEnv) MustRunGarden(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunGarden(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("garden %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Habit represents a habit entity for JSON parsing.
type Habit struct {
	HabitID     string `json:"HabitID"`
	Title       string `json:"Title"`
	Description string `json:"Description"`
	Frequency   string `json:"Frequency"`
	XPReward    int    `json:"XPReward"`
	Active      bool   `json:"Active"`
	CreatedAt   string `json:"CreatedAt"`
}

// Plant represents a plant entity for JSON parsing.
type Plant struct {
	PlantID   string `json:"PlantID"`
	Name      string `json:"Name"`
	Species   string `json:"Species"`
	XP        int    `json:"XP"`
	Stage     int    `json:"Stage"`
	CreatedAt string `json:"CreatedAt"`
}

// DoneResult represents the done command's JSON output.
type DoneResult struct {
	Outcome string `json:"outcome"`
	HabitID string `json:"habit_id"`
	PlantID string `json:"plant_id"`
	Day     string `json:"day"`
}

// AddHabit creates a habit via the CLI and returns its ID.
func (e *TestEnv) AddHabit(title string, xp int) string {
	e.t.Helper()
	result := e.MustRunGarden("habit", "add", title, "--xp", strconv.Itoa(xp), "--json")
	ids := ParseJSON[map[string]string](e.t, result.Stdout)
	return ids["habit_id"]
}

// AddPlant creates a plant via the CLI and returns its ID.
func (e *TestEnv) AddPlant(name string) string {
	e.t.Helper()
	result := e.MustRunGarden("plant", "add", name, "--json")
	ids := ParseJSON[map[string]string](e.t, result.Stdout)
	return ids["plant_id"]
}

// ListPlants fetches all plants via the CLI.
func (e *TestEnv) ListPlants() []Plant {
	e.t.Helper()
	result := e.MustRunGarden("plant", "list", "--json")
	return ParseJSON[[]Plant](e.t, result.Stdout)
}
