package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/fsutil"
)

// input is one lsusb dump to analyze.
type input struct {
	Name string
	Text string
}

// readInputs loads every dump to analyze. The configured path may be a
// single file or a directory of .txt dumps; an empty path or "-" reads the
// app's input stream.
func (a *App) readInputs(ctx context.Context) ([]input, error) {
	logger := ctxlog.FromContext(ctx)

	if a.config.InputPath == "" || a.config.InputPath == "-" {
		logger.Debug("Reading dump from input stream.")
		data, err := io.ReadAll(a.inR)
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
		return []input{{Name: "stdin", Text: string(data)}}, nil
	}

	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	paths := []string{a.config.InputPath}
	if info.IsDir() {
		paths, err = fsutil.FindFilesByExtension(a.config.InputPath, ".txt")
		if err != nil {
			return nil, fmt.Errorf("failed to scan input directory: %w", err)
		}
		if len(paths) == 0 {
			return nil, fmt.Errorf("no .txt dumps found in %s", a.config.InputPath)
		}
		logger.Debug("Input directory scanned.", "path", a.config.InputPath, "files", len(paths))
	}

	inputs := make([]input, 0, len(paths))
	for _, path := range paths {
		logger.Debug("Reading dump from file.", "path", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		inputs = append(inputs, input{Name: path, Text: string(data)})
	}
	return inputs, nil
}
