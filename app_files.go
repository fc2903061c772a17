package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// SelectFolder opens the native directory picker and returns the chosen
// absolute path. Dismissing the dialog is an error so the frontend can tell
// "cancelled" apart from an empty path.
func (a *App) SelectFolder() (string, error) {
	folder, err := runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{
		Title: "Select Match Folder",
	})
	if err != nil {
		return "", err
	}
	if folder == "" {
		return "", fmt.Errorf("no folder selected")
	}
	return folder, nil
}

// SaveFile opens the native save dialog. An empty return with nil error
// means the user cancelled.
func (a *App) SaveFile(extensions []string, defaultName string) (string, error) {
	opts := runtime.SaveDialogOptions{
		DefaultFilename: defaultName,
	}
	if len(extensions) > 0 {
		patterns := make([]string, len(extensions))
		for i, ext := range extensions {
			patterns[i] = "*." + strings.TrimPrefix(ext, ".")
		}
		opts.Filters = []runtime.FileFilter{{
			DisplayName: "Supported Files",
			Pattern:     strings.Join(patterns, ";"),
		}}
	}

	path, err := runtime.SaveFileDialog(a.ctx, opts)
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteBinaryFile writes raw bytes to a path chosen by the frontend,
// typically a rendered heatmap export.
func (a *App) WriteBinaryFile(path string, contents []byte) error {
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
