package starnavi

import (
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/phanxgames/starnavi/fstree"
)

func TestLauncherFunc(t *testing.T) {
	var got *fstree.File
	want := fstree.NewFile("a.txt", 0)
	l := LauncherFunc(func(f *fstree.File) error {
		got = f
		return errors.New("boom")
	})
	if err := l.Launch(want); err == nil || err.Error() != "boom" {
		t.Errorf("Launch error = %v", err)
	}
	if got != want {
		t.Error("LauncherFunc should pass the file through")
	}
}

func TestExecLauncherCommand(t *testing.T) {
	tree := buildTree("docs/a.txt")
	f := tree.File("docs/a.txt")
	f.Handler = "viewer"

	var name string
	var args []string
	l := &ExecLauncher{
		Command: func(n string, a ...string) *exec.Cmd {
			name, args = n, a
			return exec.Command("true")
		},
	}
	if err := l.Launch(f); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			t.Skip("true not available")
		}
		t.Fatal(err)
	}
	if name != "viewer" {
		t.Errorf("handler = %q", name)
	}
	if len(args) != 1 || args[0] != f.Path() {
		t.Errorf("args = %v, want [%s]", args, f.Path())
	}
}

func TestExecLauncherDefaultHandler(t *testing.T) {
	f := fstree.NewFile("a.bin", 0)
	f.Handler = ""

	var name string
	l := &ExecLauncher{
		Command: func(n string, a ...string) *exec.Cmd {
			name = n
			return exec.Command("/nonexistent/starnavi-handler")
		},
	}
	err := l.Launch(f)
	if err == nil {
		t.Fatal("expected a start error")
	}
	if name != fstree.DefaultHandler {
		t.Errorf("handler = %q, want %q", name, fstree.DefaultHandler)
	}
	if !strings.Contains(err.Error(), "starnavi: launch") {
		t.Errorf("error = %v", err)
	}
}
