package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/poisedms/poised/internal/prompt"
	"github.com/poisedms/poised/internal/storage"
	"github.com/poisedms/poised/internal/workflow"
)

func newTestMenu(t *testing.T, input string) (*prompt.Prompter, *workflow.Engine, *strings.Builder) {
	t.Helper()
	db, err := storage.OpenDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	var out strings.Builder
	p := prompt.New(strings.NewReader(input), &out)
	return p, workflow.New(db, p), &out
}

func TestMenuExit(t *testing.T) {
	p, engine, out := newTestMenu(t, "9\n")
	if err := menuLoop(p, engine); err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Errorf("output missing exit message:\n%s", out.String())
	}
	for _, label := range []string{
		"1. View all projects",
		"5. Add a new project",
		"8. Finalize a project",
		"9. Exit",
	} {
		if !strings.Contains(out.String(), label) {
			t.Errorf("menu missing %q:\n%s", label, out.String())
		}
	}
}

func TestMenuInvalidChoice(t *testing.T) {
	p, engine, out := newTestMenu(t, "abc\n12\n9\n")
	if err := menuLoop(p, engine); err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}
	if n := strings.Count(out.String(), "Invalid choice. Please try again."); n != 2 {
		t.Errorf("invalid-choice messages = %d, want 2", n)
	}
}

func TestMenuConfirmDeclineReturnsToMenu(t *testing.T) {
	// Choose "view all", decline the confirmation, then exit.
	p, engine, out := newTestMenu(t, "1\nn\n9\n")
	if err := menuLoop(p, engine); err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}
	if strings.Contains(out.String(), "No data found") {
		t.Errorf("declined action still ran:\n%s", out.String())
	}
	if n := strings.Count(out.String(), "Please choose an option:"); n != 2 {
		t.Errorf("menu shown %d times, want 2", n)
	}
}

func TestMenuDispatchesView(t *testing.T) {
	p, engine, out := newTestMenu(t, "1\ny\n9\n")
	if err := menuLoop(p, engine); err != nil {
		t.Fatalf("menuLoop() error = %v", err)
	}
	if !strings.Contains(out.String(), "No data found for All Projects.") {
		t.Errorf("view-all did not run:\n%s", out.String())
	}
}

func TestMenuEOFExitsCleanly(t *testing.T) {
	p, engine, _ := newTestMenu(t, "")
	if err := menuLoop(p, engine); err != nil {
		t.Fatalf("menuLoop() error = %v, want nil on EOF", err)
	}
}
