// Package utils provides shared logging and debug helpers for the promptsmith library.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DebugOptions contains configuration for debug output.
type DebugOptions struct {
	Enabled      bool
	OutputDir    string
	SaveToFile   bool
	LogPrompts   bool
	LogResponses bool
}

// DebugManager records prompts and raw model responses while a pipeline runs.
// It is separate from the artifact writer: debug output is noisy and optional,
// artifacts are part of a run's result.
type DebugManager struct {
	options   DebugOptions
	logger    Logger
	outputDir string
}

// NewDebugManager creates a new debug manager with the given options.
func NewDebugManager(logger Logger, options DebugOptions) *DebugManager {
	outputDir := options.OutputDir
	if outputDir == "" {
		outputDir = filepath.Join(".", "debug_output")
	}

	if options.SaveToFile && options.Enabled {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			logger.Warn("failed to create debug output directory", "dir", outputDir, "error", err)
		}
	}

	return &DebugManager{
		options:   options,
		logger:    logger,
		outputDir: outputDir,
	}
}

// LogPrompt records an outgoing prompt if prompt logging is enabled.
func (dm *DebugManager) LogPrompt(name, prompt string) {
	if !dm.options.Enabled || !dm.options.LogPrompts {
		return
	}
	dm.logger.Debug("prompt", "name", name, "text", prompt)
	if dm.options.SaveToFile {
		dm.saveToFile(fmt.Sprintf("prompt_%s.txt", name), prompt)
	}
}

// LogResponse records a raw model response if response logging is enabled.
func (dm *DebugManager) LogResponse(name, response string) {
	if !dm.options.Enabled || !dm.options.LogResponses {
		return
	}
	dm.logger.Debug("response", "name", name, "text", response)
	if dm.options.SaveToFile {
		dm.saveToFile(fmt.Sprintf("response_%s.txt", name), response)
	}
}

// IsEnabled returns whether debugging is enabled.
func (dm *DebugManager) IsEnabled() bool {
	return dm.options.Enabled
}

func (dm *DebugManager) saveToFile(filename, content string) {
	path := filepath.Join(dm.outputDir, filename)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		dm.logger.Error("failed to open debug file", "file", path, "error", err)
		return
	}
	defer file.Close()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	if _, err := fmt.Fprintf(file, "[%s] %s\n", timestamp, content); err != nil {
		dm.logger.Error("failed to write debug file", "file", path, "error", err)
	}
}
