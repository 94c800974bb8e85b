package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/abcnoodle/marketintel/internal/dataset"
)

// detectDataDir looks for the insights document in the usual places.
func detectDataDir() string {
	for _, dir := range []string{".", "data", "public", "static"} {
		if _, err := os.Stat(filepath.Join(dir, dataset.InsightsFile)); err == nil {
			return dir
		}
	}
	return "."
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("port must be a number")
	}
	if n < 1 || n > 65535 {
		return errors.New("port must be between 1 and 65535")
	}
	return nil
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to marketintel! Let's configure the dashboard.")
	fmt.Println()

	cfg := DefaultConfig()

	dataDir := detectDataDir()
	if dataDir != "." {
		fmt.Printf("Found datasets in %s\n\n", dataDir)
	}

	// 1. Data directory.
	dirPrompt := promptui.Prompt{
		Label:   "Directory containing " + dataset.InsightsFile + " and " + dataset.DashboardFile,
		Default: dataDir,
	}
	dir, err := dirPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = strings.TrimSpace(dir)

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 3. Live reload.
	watchPrompt := promptui.Prompt{
		Label:     "Reload the dashboard when the datasets change",
		IsConfirm: true,
	}
	if _, err := watchPrompt.Run(); err == nil {
		cfg.Watch = true
	} else if !errors.Is(err, promptui.ErrAbort) {
		return nil, fmt.Errorf("watch: %w", err)
	}

	if cfg.Watch {
		patternPrompt := promptui.Prompt{
			Label:   "Watch patterns (comma-separated globs)",
			Default: strings.Join(cfg.WatchPatterns, ","),
		}
		patterns, err := patternPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("watch patterns: %w", err)
		}
		if p := splitAndTrim(patterns); len(p) > 0 {
			cfg.WatchPatterns = p
		}
	}

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"json    (structured, for production)",
			"console (human readable)",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}
	cfg.LogFormat = []string{FormatJSON, FormatConsole}[formatIdx]

	// 5. Static export directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = strings.TrimSpace(outputDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and drops empty entries.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
