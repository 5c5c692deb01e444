package regstore

import (
	"errors"
	"testing"
)

func TestEnsureKeyCreatesAncestors(t *testing.T) {
	s := NewMemStore()

	if err := s.EnsureKey(`Directory\shell\idealaunch\command`); err != nil {
		t.Fatalf("EnsureKey() error = %v", err)
	}

	for _, path := range []string{
		`Directory`,
		`Directory\shell`,
		`Directory\shell\idealaunch`,
		`Directory\shell\idealaunch\command`,
	} {
		exists, err := s.KeyExists(path)
		if err != nil {
			t.Fatalf("KeyExists(%q) error = %v", path, err)
		}
		if !exists {
			t.Errorf("KeyExists(%q) = false after EnsureKey", path)
		}
	}
}

func TestSetGetString(t *testing.T) {
	s := NewMemStore()

	if err := s.SetString(`Directory\shell\idealaunch`, "", "Open with IntelliJ IDEA"); err != nil {
		t.Fatalf("SetString() error = %v", err)
	}
	if err := s.SetString(`Directory\shell\idealaunch`, "Icon", `C:\idea64.exe`); err != nil {
		t.Fatalf("SetString() error = %v", err)
	}

	got, err := s.GetString(`Directory\shell\idealaunch`, "")
	if err != nil {
		t.Fatalf("GetString() error = %v", err)
	}
	if got != "Open with IntelliJ IDEA" {
		t.Errorf("GetString() = %q", got)
	}

	got, err = s.GetString(`Directory\shell\idealaunch`, "Icon")
	if err != nil {
		t.Fatalf("GetString(Icon) error = %v", err)
	}
	if got != `C:\idea64.exe` {
		t.Errorf("GetString(Icon) = %q", got)
	}
}

func TestSetStringOverwrites(t *testing.T) {
	s := NewMemStore()

	if err := s.SetString(`k`, "", "first"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetString(`k`, "", "second"); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetString(`k`, "")
	if err != nil {
		t.Fatalf("GetString() error = %v", err)
	}
	if got != "second" {
		t.Errorf("GetString() = %q, want second", got)
	}
}

func TestGetStringMissing(t *testing.T) {
	s := NewMemStore()

	if _, err := s.GetString(`missing`, ""); !errors.Is(err, ErrNotExist) {
		t.Errorf("GetString() on missing key error = %v, want ErrNotExist", err)
	}

	if err := s.EnsureKey(`present`); err != nil {
		t.Fatal(err)
	}
	if _, err := s.GetString(`present`, "Icon"); !errors.Is(err, ErrNotExist) {
		t.Errorf("GetString() on missing value error = %v, want ErrNotExist", err)
	}
}

func TestDeleteTree(t *testing.T) {
	s := NewMemStore()

	if err := s.SetString(`Directory\shell\idealaunch\command`, "", "cmd"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetString(`Directory\shell\other`, "", "keep"); err != nil {
		t.Fatal(err)
	}

	if err := s.DeleteTree(`Directory\shell\idealaunch`); err != nil {
		t.Fatalf("DeleteTree() error = %v", err)
	}

	exists, _ := s.KeyExists(`Directory\shell\idealaunch`)
	if exists {
		t.Error("deleted key still exists")
	}
	exists, _ = s.KeyExists(`Directory\shell\idealaunch\command`)
	if exists {
		t.Error("deleted subkey still exists")
	}
	exists, _ = s.KeyExists(`Directory\shell\other`)
	if !exists {
		t.Error("sibling key was deleted")
	}
}

func TestDeleteTreeAbsentIsNoOp(t *testing.T) {
	s := NewMemStore()
	if err := s.DeleteTree(`never\existed`); err != nil {
		t.Errorf("DeleteTree() on absent key error = %v, want nil", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := NewMemStore()
	done := make(chan bool)

	for i := 0; i < 10; i++ {
		go func(idx int) {
			path := `Directory\shell\` + string(rune('a'+idx))
			if err := s.SetString(path, "", "v"); err != nil {
				t.Errorf("SetString(%q) error = %v", path, err)
			}
			done <- true
		}(i)
	}

	for i := 0; i < 10; i++ {
		<-done
	}

	for i := 0; i < 10; i++ {
		path := `Directory\shell\` + string(rune('a'+i))
		exists, _ := s.KeyExists(path)
		if !exists {
			t.Errorf("KeyExists(%q) = false after concurrent writes", path)
		}
	}
}
