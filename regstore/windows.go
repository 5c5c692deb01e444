//go:build windows

package regstore

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// windowsStore is the live Store backed by HKEY_CLASSES_ROOT.
type windowsStore struct {
	root registry.Key
}

// Open returns a Store over the classes-root hive. Writes require an
// elevated process; callers gate on security.IsElevated before mutating.
func Open() (Store, error) {
	return &windowsStore{root: registry.CLASSES_ROOT}, nil
}

func (s *windowsStore) EnsureKey(path string) error {
	// RegCreateKeyEx creates missing ancestors and is a no-op for existing keys.
	k, _, err := registry.CreateKey(s.root, path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to create key %s: %w", path, err)
	}
	return k.Close()
}

func (s *windowsStore) SetString(path, name, value string) error {
	k, _, err := registry.CreateKey(s.root, path, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open key %s: %w", path, err)
	}
	defer k.Close()

	if err := k.SetStringValue(name, value); err != nil {
		return fmt.Errorf("failed to set value %q under %s: %w", name, path, err)
	}
	return nil
}

func (s *windowsStore) GetString(path, name string) (string, error) {
	k, err := registry.OpenKey(s.root, path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNotExist
		}
		return "", fmt.Errorf("failed to open key %s: %w", path, err)
	}
	defer k.Close()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return "", ErrNotExist
		}
		return "", fmt.Errorf("failed to read value %q under %s: %w", name, path, err)
	}
	return value, nil
}

func (s *windowsStore) KeyExists(path string) (bool, error) {
	k, err := registry.OpenKey(s.root, path, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open key %s: %w", path, err)
	}
	return true, k.Close()
}

func (s *windowsStore) DeleteTree(path string) error {
	exists, err := s.KeyExists(path)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return s.deleteTree(path)
}

// deleteTree removes path bottom-up; RegDeleteKey refuses keys with children.
func (s *windowsStore) deleteTree(path string) error {
	k, err := registry.OpenKey(s.root, path, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to open key %s: %w", path, err)
	}

	names, err := k.ReadSubKeyNames(-1)
	closeErr := k.Close()
	if err != nil {
		return fmt.Errorf("failed to enumerate subkeys of %s: %w", path, err)
	}
	if closeErr != nil {
		return closeErr
	}

	for _, name := range names {
		if err := s.deleteTree(path + `\` + name); err != nil {
			return err
		}
	}

	if err := registry.DeleteKey(s.root, path); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("failed to delete key %s: %w", path, err)
	}
	return nil
}
