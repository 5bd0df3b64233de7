package starnavi

import (
	"fmt"
	"os/exec"

	"github.com/phanxgames/starnavi/fstree"
	"go.uber.org/zap"
)

// Launcher opens a file with its external handler.
type Launcher interface {
	Launch(f *fstree.File) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(f *fstree.File) error

// Launch calls fn(f).
func (fn LauncherFunc) Launch(f *fstree.File) error { return fn(f) }

// ExecLauncher starts "<handler> <path>" as a child process and does not
// wait for it. The process is reaped in the background; a non-zero exit is
// logged.
type ExecLauncher struct {
	Logger *zap.Logger
	// Command builds the process. Defaults to exec.Command.
	Command func(name string, args ...string) *exec.Cmd
}

// Launch starts the file's handler, or fstree.DefaultHandler if it has
// none.
func (l *ExecLauncher) Launch(f *fstree.File) error {
	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}
	command := l.Command
	if command == nil {
		command = exec.Command
	}
	handler := f.Handler
	if handler == "" {
		handler = fstree.DefaultHandler
	}

	cmd := command(handler, f.Path())
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starnavi: launch %s with %s: %w", f.Path(), handler, err)
	}
	log.Debug("launched", zap.String("handler", handler), zap.String("path", f.Path()))
	go func() {
		if err := cmd.Wait(); err != nil {
			log.Warn("handler exited with error", zap.String("handler", handler),
				zap.String("path", f.Path()), zap.Error(err))
		}
	}()
	return nil
}
