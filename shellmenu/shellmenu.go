// Package shellmenu reconciles the Explorer context-menu records that let a
// user right-click a directory (or a directory background) and open it in the
// IDE. Six string records are managed as a batch: caption, icon, and command
// for each of the two menu contexts.
package shellmenu

import (
	"errors"
	"fmt"

	"github.com/mattsre/idealaunch/logutil"
	"github.com/mattsre/idealaunch/regstore"
)

// Key paths under HKEY_CLASSES_ROOT for the two menu contexts.
const (
	keyDirectory  = `Directory\shell\idealaunch`
	keyBackground = `Directory\Background\shell\idealaunch`
)

// Explorer substitutes the clicked directory for %1 on the directory verb and
// %V on the background verb.
const (
	placeholderClicked    = "%1"
	placeholderBackground = "%V"
)

// ErrNotElevated is returned when registration is attempted without
// administrative rights.
var ErrNotElevated = errors.New("managing Explorer context menu entries requires an elevated (administrator) session")

// ErrNoBinary is returned when install runs without a resolved IDE binary.
var ErrNoBinary = errors.New("no IDE installation found; install aborted")

// Record is one registry string value: a key path, a value name (empty for
// the key's default value), and the string data.
type Record struct {
	KeyPath   string
	ValueName string
	Value     string
}

// Options carries the inputs the record set is built from. Elevated is the
// injected privilege probe result so the reconcile logic stays testable.
type Options struct {
	// Label is the context-menu caption.
	Label string

	// BinaryPath is the resolved IDE executable, used as the menu icon.
	// Required for install.
	BinaryPath string

	// SelfExe is the launcher executable registered as the command target.
	SelfExe string

	// Elevated is the caller's privilege state.
	Elevated bool
}

// Records returns the six shell-integration records for the given options.
// Order between records is irrelevant; each addresses an independent slot.
func Records(opts Options) []Record {
	openCmd := func(placeholder string) string {
		return fmt.Sprintf(`"%s" open "%s"`, opts.SelfExe, placeholder)
	}

	return []Record{
		{KeyPath: keyDirectory, ValueName: "", Value: opts.Label},
		{KeyPath: keyDirectory, ValueName: "Icon", Value: opts.BinaryPath},
		{KeyPath: keyDirectory + `\command`, ValueName: "", Value: openCmd(placeholderClicked)},
		{KeyPath: keyBackground, ValueName: "", Value: opts.Label},
		{KeyPath: keyBackground, ValueName: "Icon", Value: opts.BinaryPath},
		{KeyPath: keyBackground + `\command`, ValueName: "", Value: openCmd(placeholderBackground)},
	}
}

// Install writes the six records. Preconditions: the caller is elevated and a
// binary was resolved; on violation nothing is written. Running install twice
// yields the same end state. There is no rollback: a failure partway through
// leaves the records written so far in place.
func Install(store regstore.Store, opts Options) error {
	if !opts.Elevated {
		return ErrNotElevated
	}
	if opts.BinaryPath == "" {
		return ErrNoBinary
	}

	for _, rec := range Records(opts) {
		if err := store.EnsureKey(rec.KeyPath); err != nil {
			return err
		}
		if err := store.SetString(rec.KeyPath, rec.ValueName, rec.Value); err != nil {
			return err
		}
		logutil.Debug("wrote shell menu record", "key", rec.KeyPath, "name", rec.ValueName)
	}
	return nil
}

// Uninstall removes the records. Precondition: the caller is elevated. The
// operation is idempotent; key paths that do not exist are skipped, so running
// it against an empty store is a no-op. A resolved binary is not required.
func Uninstall(store regstore.Store, opts Options) error {
	if !opts.Elevated {
		return ErrNotElevated
	}

	for _, rec := range Records(opts) {
		exists, err := store.KeyExists(rec.KeyPath)
		if err != nil {
			return err
		}
		if !exists {
			continue
		}
		if err := store.DeleteTree(rec.KeyPath); err != nil {
			return err
		}
		logutil.Debug("removed shell menu key", "key", rec.KeyPath)
	}
	return nil
}

// Installed reports whether the directory-context key is present, the
// cheapest signal that a previous install is in place.
func Installed(store regstore.Store) (bool, error) {
	return store.KeyExists(keyDirectory)
}
