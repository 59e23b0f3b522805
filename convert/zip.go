package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// bundle packs every regular file in dir into a ZIP archive at dest.
func bundle(dir, dest string) (err error) {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("could not create archive %q: %w", dest, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close archive %q: %w", dest, cerr)
		}
	}()

	zw := zip.NewWriter(out)
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", dir, err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := addToArchive(zw, filepath.Join(dir, file.Name()), file.Name()); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("could not finish archive %q: %w", dest, err)
	}
	return nil
}

func addToArchive(zw *zip.Writer, path, name string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer func() {
		if cerr := in.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", path, cerr)
		}
	}()

	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("could not add %q to archive: %w", name, err)
	}
	if _, err = io.Copy(w, in); err != nil {
		return fmt.Errorf("could not write %q to archive: %w", name, err)
	}
	return nil
}
