package dbfatal

import (
	"errors"
	"testing"
)

func withCapturedExit(t *testing.T) **int {
	t.Helper()
	code := new(*int)
	orig := Exit
	Exit = func(c int) { v := c; *code = &v }
	t.Cleanup(func() { Exit = orig })
	return code
}

func TestFatalfCallsExit(t *testing.T) {
	code := withCapturedExit(t)
	Fatalf("page number out of bounds: %d", 401)
	if *code == nil {
		t.Fatal("Fatalf did not call Exit")
	}
	if **code != 1 {
		t.Errorf("exit code = %d, want 1", **code)
	}
}

func TestWrapNilIsNoop(t *testing.T) {
	var called bool
	orig := Exit
	Exit = func(int) { called = true }
	defer func() { Exit = orig }()

	Wrap(nil, "should not fire")
	if called {
		t.Error("Wrap(nil, ...) called Exit")
	}
}

func TestWrapCallsExit(t *testing.T) {
	code := withCapturedExit(t)
	Wrap(errors.New("disk full"), "flush page")
	if *code == nil {
		t.Fatal("Wrap did not call Exit")
	}
	if **code != 1 {
		t.Errorf("exit code = %d, want 1", **code)
	}
}
