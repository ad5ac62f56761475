package coldb

import (
	"errors"
	"slices"
	"testing"
)

func TestRename(t *testing.T) {
	s := people(t)
	if err := s.Rename("r1", "alice"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	want := []string{"h0", "alice", "r2"}
	if !slices.Equal(s.Keys(), want) {
		t.Errorf("Keys = %v, want %v", s.Keys(), want)
	}
	if got, _ := s.Get("alice", "name"); got != "Alice" {
		t.Errorf("Get = %q, want Alice", got)
	}
}

func TestRenameHeader(t *testing.T) {
	s := people(t)
	s.Rename("h0", "cols")
	if k, _ := s.HeaderKey(); k != "cols" {
		t.Errorf("HeaderKey = %q, want cols", k)
	}
	if got, _ := s.Get("r2", "age"); got != "25" {
		t.Errorf("Get = %q, want 25", got)
	}
}

func TestRenameErrors(t *testing.T) {
	s := people(t)
	if err := s.Rename("nope", "x"); !errors.Is(err, ErrCoordinatesNotFound) {
		t.Errorf("missing: got %v, want ErrCoordinatesNotFound", err)
	}
	if err := s.Rename("nope", "nope"); !errors.Is(err, ErrCoordinatesNotFound) {
		t.Errorf("missing same: got %v, want ErrCoordinatesNotFound", err)
	}
	if err := s.Rename("r1", "r2"); !errors.Is(err, ErrExists) {
		t.Errorf("collision: got %v, want ErrExists", err)
	}
	if err := s.Rename("r1", "a:b"); !errors.Is(err, ErrInvalidKey) {
		t.Errorf("invalid: got %v, want ErrInvalidKey", err)
	}
	if err := s.Rename("r1", "r1"); err != nil {
		t.Errorf("same name: %v", err)
	}
}

func TestRenamePersists(t *testing.T) {
	s := people(t)
	s.Rename("r2", "bob")
	fresh, _ := Open(s.Path(), Config{})
	sameRows(t, s, fresh)
}
