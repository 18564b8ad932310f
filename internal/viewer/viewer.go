// Package viewer launches the host's default spreadsheet application. The
// merge pipeline only sees the Opener interface, so tests substitute Nop.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener opens a file in the host's default application.
type Opener interface {
	Open(path string) error
}

// ExecOpener shells out to the platform's opener command.
type ExecOpener struct{}

// Open launches path with the default application for the current OS. The
// launcher is reaped in the background so no zombie outlives the run.
func (ExecOpener) Open(path string) error {
	cmd := openCommand(path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching viewer for %s: %w", path, err)
	}
	go func() { _ = cmd.Wait() }()
	return nil
}

// openCommand picks the platform launcher for path.
func openCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// Nop is an Opener that does nothing.
type Nop struct{}

// Open does nothing.
func (Nop) Open(string) error { return nil }
