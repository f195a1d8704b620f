// Package archive writes a generated file set to its destinations: a zip
// archive rooted at the plugin slug, or a plugin directory on disk.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	oerrors "github.com/wpforge/cli/internal/errors"
	"github.com/wpforge/cli/internal/generator"
	"github.com/wpforge/cli/internal/output"
)

// ErrUnsafePath is returned when a generated path is absolute or escapes the
// plugin directory.
var ErrUnsafePath = errors.New("unsafe file path")

// WriteZip writes every file of set under "<slug>/" to w, in set order.
// Entries carry no timestamps so equal sets produce equal archives.
func WriteZip(w io.Writer, slug string, set *generator.FileSet) error {
	if err := checkPaths(set); err != nil {
		return err
	}

	zw := zip.NewWriter(w)

	for _, f := range set.Files() {
		header := &zip.FileHeader{
			Name:   path.Join(slug, f.Path),
			Method: zip.Deflate,
		}
		header.SetMode(0o644)

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("adding %s: %w", header.Name, err)
		}
		if _, err := io.WriteString(entry, f.Content); err != nil {
			return fmt.Errorf("writing %s: %w", header.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

// WriteZipFile creates the archive at dest. An existing file is only
// replaced when force is set.
func WriteZipFile(dest, slug string, set *generator.FileSet, force bool) (err error) {
	if err := checkPaths(set); err != nil {
		return err
	}
	if !force {
		if _, statErr := os.Stat(dest); statErr == nil {
			return oerrors.NewExistsError("archive already exists", dest, "Use --force to overwrite")
		}
	}

	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing archive: %w", closeErr)
		}
	}()

	return WriteZip(file, slug, set)
}

// WriteDir writes set into dir and returns the written paths.
// A non-empty dir is refused unless force is set; with force, files are
// overwritten in place and unrelated files are left alone.
func WriteDir(dir string, set *generator.FileSet, force bool) ([]string, error) {
	if err := checkPaths(set); err != nil {
		return nil, err
	}
	if err := checkTargetDir(dir, force); err != nil {
		return nil, err
	}

	written := make([]string, 0, set.Len())
	for _, f := range set.Files() {
		target := filepath.Join(dir, filepath.FromSlash(f.Path))

		parent := filepath.Dir(target)
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", parent, err)
		}

		if err := os.WriteFile(target, []byte(f.Content), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", target, err)
		}

		output.Debug("wrote file", "path", f.Path)
		written = append(written, f.Path)
	}

	return written, nil
}

// checkPaths rejects sets with a path that would leave the plugin directory.
// Nothing is written when one is found.
func checkPaths(set *generator.FileSet) error {
	for _, p := range set.Paths() {
		if !filepath.IsLocal(filepath.FromSlash(p)) {
			return fmt.Errorf("%w: %q is not a path inside the plugin directory", ErrUnsafePath, p)
		}
	}
	return nil
}

func checkTargetDir(dir string, force bool) error {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking target directory: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading target directory: %w", err)
	}

	if len(entries) > 0 && !force {
		return oerrors.NewExistsError(
			"target directory is not empty",
			dir,
			"Use --force to overwrite existing files",
		)
	}
	return nil
}

// ReadDir loads every regular file under dir, keyed by forward-slash path
// relative to dir.
func ReadDir(dir string) (map[string]string, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, oerrors.NewNotFoundError("directory does not exist", dir, "")
	}
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	files := map[string]string{}
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	return files, nil
}
