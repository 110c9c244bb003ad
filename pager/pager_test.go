package pager

import (
	"os"
	"testing"
)

func newTempDBPath(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp("", "pager_test_*.db")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })
	return f.Name()
}

func TestOpenEmptyFile(t *testing.T) {
	path := newTempDBPath(t)

	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if p.NumPages() != 0 {
		t.Errorf("NumPages = %d, want 0", p.NumPages())
	}
}

func TestGetPageExtendsNumPages(t *testing.T) {
	path := newTempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	page := p.GetPage(0)
	if p.NumPages() != 1 {
		t.Errorf("NumPages after GetPage(0) = %d, want 1", p.NumPages())
	}
	page.Data[0] = 0xAB

	// Same page number returns the same cached buffer.
	again := p.GetPage(0)
	if again.Data[0] != 0xAB {
		t.Errorf("GetPage(0) did not return the same cached buffer")
	}

	p.GetPage(3)
	if p.NumPages() != 4 {
		t.Errorf("NumPages after GetPage(3) = %d, want 4", p.NumPages())
	}
}

func TestFlushAndReopenPersists(t *testing.T) {
	path := newTempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	page := p.GetPage(0)
	page.Data[10] = 0x42
	p.Flush(0)
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer p2.Close()

	if p2.NumPages() != 1 {
		t.Fatalf("reopened NumPages = %d, want 1", p2.NumPages())
	}
	got := p2.GetPage(0)
	if got.Data[10] != 0x42 {
		t.Errorf("reopened page byte 10 = %d, want 0x42", got.Data[10])
	}
}

func TestGetUnusedPageNum(t *testing.T) {
	path := newTempDBPath(t)
	p, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer p.Close()

	if got := p.GetUnusedPageNum(); got != 0 {
		t.Errorf("GetUnusedPageNum on empty pager = %d, want 0", got)
	}
	p.GetPage(0)
	if got := p.GetUnusedPageNum(); got != 1 {
		t.Errorf("GetUnusedPageNum after one page = %d, want 1", got)
	}
}
