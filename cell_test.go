package coldb

import (
	"errors"
	"slices"
	"testing"
)

// TestScenario walks the basic flow: set a header, fill one row cell by
// cell, read it back, and project a single column.
func TestScenario(t *testing.T) {
	s := openTestStore(t)
	if err := s.SetHeader("h0", []string{"name", "age"}); err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	if err := s.Insert("r1", "name", "Alice"); err != nil {
		t.Fatalf("Insert name: %v", err)
	}
	if err := s.Insert("r1", "age", "30"); err != nil {
		t.Fatalf("Insert age: %v", err)
	}

	got, err := s.Get("r1", "name")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "Alice" {
		t.Errorf("Get = %q, want Alice", got)
	}

	sel, err := s.Select(nil, []string{"age"})
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	want := map[string][]string{"h0": {"age"}, "r1": {"30"}}
	if sel.Len() != len(want) {
		t.Fatalf("Select Len = %d, want %d", sel.Len(), len(want))
	}
	for k, cells := range want {
		row, _ := sel.Row(k)
		if !slices.Equal(row, cells) {
			t.Errorf("Select row %q = %v, want %v", k, row, cells)
		}
	}
}

func TestInsertNewRowWidth(t *testing.T) {
	s := people(t)
	if err := s.Insert("r9", "age", "41"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	row, _ := s.Row("r9")
	if !slices.Equal(row, []string{"", "41"}) {
		t.Errorf("row = %q, want [\"\" 41]", row)
	}
	if keys := s.Keys(); keys[len(keys)-1] != "r9" {
		t.Errorf("new row not appended: %v", keys)
	}
}

func TestInsertOverwrite(t *testing.T) {
	s := people(t)
	s.Insert("r1", "name", "Alicia")
	if got, _ := s.Get("r1", "name"); got != "Alicia" {
		t.Errorf("Get = %q, want Alicia", got)
	}
	if got, _ := s.Get("r1", "age"); got != "30" {
		t.Errorf("neighbouring cell changed: %q", got)
	}
}

func TestInsertErrors(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		column string
	}{
		{"unknown column", "r1", "bogus"},
		{"unknown column new key", "r9", "bogus"},
		{"key column", "r1", "key"},
		{"key column new key", "r9", "key"},
		{"short row", "short", "age"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := people(t)
			s.AddRow("short", []string{"Eve"})
			n := s.Len()

			err := s.Insert(tt.key, tt.column, "v")
			if !errors.Is(err, ErrCoordinatesNotFound) {
				t.Fatalf("Insert: got %v, want ErrCoordinatesNotFound", err)
			}
			if s.Len() != n {
				t.Errorf("failed insert changed row count: %d, want %d", s.Len(), n)
			}
		})
	}
}

func TestInsertNoHeader(t *testing.T) {
	s := openTestStore(t)
	if err := s.Insert("r1", "name", "x"); !errors.Is(err, ErrCoordinatesNotFound) {
		t.Errorf("Insert: got %v, want ErrCoordinatesNotFound", err)
	}
}

func TestGetUnknownColumnIsEmpty(t *testing.T) {
	s := people(t)
	got, err := s.Get("r1", "bogus")
	if err != nil || got != "" {
		t.Errorf("Get(r1, bogus) = %q, %v, want \"\", nil", got, err)
	}
	// Even for a missing key, an unknown column short-circuits.
	got, err = s.Get("nope", "bogus")
	if err != nil || got != "" {
		t.Errorf("Get(nope, bogus) = %q, %v, want \"\", nil", got, err)
	}
}

func TestGetKeyColumn(t *testing.T) {
	s := people(t)
	if got, _ := s.Get("r2", "key"); got != "r2" {
		t.Errorf("Get(r2, key) = %q, want r2", got)
	}
}

func TestGetErrors(t *testing.T) {
	s := people(t)
	s.AddRow("short", []string{"Eve"})

	if _, err := s.Get("nope", "name"); !errors.Is(err, ErrCoordinatesNotFound) {
		t.Errorf("Get missing key: got %v, want ErrCoordinatesNotFound", err)
	}
	if _, err := s.Get("short", "age"); !errors.Is(err, ErrCoordinatesNotFound) {
		t.Errorf("Get short row: got %v, want ErrCoordinatesNotFound", err)
	}
}

func TestGetHeaderRow(t *testing.T) {
	s := people(t)
	if got, _ := s.Get("h0", "age"); got != "age" {
		t.Errorf("Get(h0, age) = %q, want age", got)
	}
}
