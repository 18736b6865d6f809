package fetcher

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"

	"github.com/kasperjunge/agent-upd/internal/errors"
)

// extractTarball unpacks a gzip tarball into destDir. Entries that would
// escape destDir are rejected; non-regular files other than directories are
// skipped.
func extractTarball(tarballPath, destDir string) error {
	file, err := os.Open(tarballPath)
	if err != nil {
		return errors.Wrap(errors.CodeIOReadError, "opening repository archive", err)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrap(errors.CodeIOReadError, "decompressing repository archive", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.CodeIOReadError, "reading repository archive", err)
		}

		name := filepath.FromSlash(header.Name)
		if !filepath.IsLocal(name) {
			return errors.Wrap(errors.CodeIOReadError, "reading repository archive",
				fmt.Errorf("archive entry escapes extraction dir: %s", header.Name))
		}
		target := filepath.Join(destDir, name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return errors.Wrap(errors.CodeIOWriteError, "creating archive directory", err)
			}
		case tar.TypeReg:
			if err := writeArchiveFile(target, tr, header.FileInfo().Mode().Perm()); err != nil {
				return err
			}
		default:
			// Symlinks and other special entries are not installed.
		}
	}
}

func writeArchiveFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "creating archive directory", err)
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "creating archive file", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "writing archive file", err)
	}
	return nil
}
