package icons

import (
	"os"
	"path/filepath"
)

// writeFile writes a single output file through fn. In atomic mode the data
// goes to a temp file in the same directory first and is renamed over the
// destination, so a crashed run never leaves a truncated file. The default
// is a plain create-and-overwrite, matching the historical behavior.
func (g *Generator) writeFile(path string, fn func(*os.File) error) error {
	if g.cfg.Atomic {
		return writeAtomic(path, fn)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeAtomic stages the write in the destination's own directory so the
// final rename stays on one filesystem.
func writeAtomic(path string, fn func(*os.File) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := fn(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
