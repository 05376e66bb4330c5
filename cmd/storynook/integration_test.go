package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/csheth/storynook/internal/tuitest"
)

func TestStorynookOnboardingAsksAge(t *testing.T) {
	t.Parallel()

	session := startStorynook(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	expectText(ctx, t, session, "Child Name")
	must(t, session.Type("Mia"))
	must(t, session.Press(tuitest.KeyEnter))
	frame := expectText(ctx, t, session, "How old is Mia?")
	if !frame.Contains("Preschooler") {
		t.Fatalf("age cards missing:\n%s", frame.Plain)
	}
	quit(ctx, t, session)
}

func TestStorynookReaderTurnsPage(t *testing.T) {
	t.Parallel()

	session := startStorynook(t)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	expectText(ctx, t, session, "Child Name")
	must(t, session.Type("Mia"))
	must(t, session.Press(tuitest.KeyEnter))
	expectText(ctx, t, session, "How old is Mia?")
	must(t, session.Press(tuitest.KeyEnter))
	expectText(ctx, t, session, "What are Mia's interests?")
	must(t, session.Press(tuitest.KeySpace, tuitest.KeyEnter))
	expectText(ctx, t, session, "Choose an avatar for Mia")
	must(t, session.Press(tuitest.KeyEnter))
	expectText(ctx, t, session, "Hi, Mia!")
	must(t, session.Press(tuitest.KeyEnter))
	expectText(ctx, t, session, "Read Now")
	must(t, session.Press(tuitest.KeyEnter))

	expectPage(ctx, t, session, 1, 6)
	must(t, session.Type("n"))
	expectPage(ctx, t, session, 2, 6)
	quit(ctx, t, session)
}

func startStorynook(t *testing.T) *tuitest.Session {
	t.Helper()
	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)
	stateDir := t.TempDir()
	session, err := tuitest.Start(tuitest.Config{
		Command: []string{
			binary,
			"--no-alt-screen",
			"--skip-splash",
			"--speech", "none",
			"--log-file", filepath.Join(stateDir, "storynook.log"),
		},
		Dir: cmdDir,
		Env: []string{"STORYNOOK_CONFIG=", "XDG_CONFIG_HOME=" + stateDir},
	})
	if err != nil {
		t.Fatalf("start CLI: %v", err)
	}
	t.Cleanup(session.Close)
	return session
}

func expectText(ctx context.Context, t *testing.T, session *tuitest.Session, text string) tuitest.Frame {
	t.Helper()
	frame, err := session.WaitForText(ctx, text)
	if err != nil {
		t.Fatal(err)
	}
	return frame
}

func expectPage(ctx context.Context, t *testing.T, session *tuitest.Session, page, total int) {
	t.Helper()
	_, err := session.WaitFor(ctx, func(f tuitest.Frame) bool {
		got, count, ok := f.PageCounter()
		return ok && got == page && count == total
	})
	if err != nil {
		t.Fatalf("waiting for page %02d/%02d: %v", page, total, err)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func quit(ctx context.Context, t *testing.T, session *tuitest.Session) {
	t.Helper()
	rec, err := session.Quit(ctx)
	if err != nil {
		t.Fatalf("quit CLI: %v", err)
	}
	if len(rec.Frames) == 0 {
		t.Fatal("no frames captured")
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	name := "storynook-integration"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), name)
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
