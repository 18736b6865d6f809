package installer

import (
	"io"
	"os"
	"path/filepath"

	"github.com/kasperjunge/agent-upd/internal/errors"
	"github.com/kasperjunge/agent-upd/internal/resource"
)

// DestPath returns the final installation path for a named resource:
// <destDir>/<name>/ for directory resources, <destDir>/<name>.md for file
// resources.
func DestPath(destDir string, kind resource.Kind, name string) string {
	cfg := resource.Kinds[kind]
	if cfg.IsDirectory {
		return filepath.Join(destDir, name)
	}
	return filepath.Join(destDir, name+cfg.FileExtension)
}

// Exists reports whether the installation target is already present.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Install copies a located resource from src into dst. Existing targets are
// removed first when overwrite is set; otherwise an exists-error is returned.
// Parent directories are created as needed.
func Install(src, dst string, kind resource.Kind, name string, overwrite bool) error {
	cfg := resource.Kinds[kind]

	if Exists(dst) {
		if !overwrite {
			return errors.ResourceExists(string(kind), name, dst)
		}
		if err := os.RemoveAll(dst); err != nil {
			return errors.Wrap(errors.CodeIOWriteError, "removing existing resource", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "creating destination directory", err)
	}

	var err error
	if cfg.IsDirectory {
		err = copyDir(src, dst)
	} else {
		err = copyFile(src, dst)
	}
	if err != nil {
		return errors.Wrap(errors.CodeIOWriteError, "copying resource", err)
	}
	return nil
}

// copyDir recursively copies a directory tree, skipping .git.
func copyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.Name() == ".git" {
			continue
		}

		if entry.IsDir() {
			if err := copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	_, err = io.Copy(dstFile, srcFile)
	return err
}
