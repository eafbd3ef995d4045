package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// slotFileMode keeps slot files private to the user running the store.
const slotFileMode os.FileMode = 0o600

func slotPath(dir, slot string) string {
	return filepath.Join(dir, slot+slotExt)
}

// readSlotFile returns the contents of slot's file under dir. A slot that was
// never written reports ok=false.
func readSlotFile(dir, slot string) ([]byte, bool, error) {
	data, err := os.ReadFile(slotPath(dir, slot))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, false, nil
	case err != nil:
		return nil, false, fmt.Errorf("read slot %q: %w", slot, err)
	}
	return data, true, nil
}

// writeSlotFile stages data in a hidden file next to the slot, flushes it to
// disk and renames it over the slot file, so readers see the old value or the
// new one and never a partial write.
func writeSlotFile(dir, slot string, data []byte) (err error) {
	staged, err := os.CreateTemp(dir, "."+slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	defer func() {
		if err != nil {
			_ = staged.Close()
			_ = os.Remove(staged.Name())
			err = fmt.Errorf("write slot %q: %w", slot, err)
		}
	}()

	if err = staged.Chmod(slotFileMode); err != nil {
		return err
	}
	if _, err = staged.Write(data); err != nil {
		return err
	}
	if err = staged.Sync(); err != nil {
		return err
	}
	if err = staged.Close(); err != nil {
		return err
	}
	return os.Rename(staged.Name(), slotPath(dir, slot))
}
