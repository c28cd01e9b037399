package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tavola/infras/otel"
	"tavola/internal/domains/booking/model"
	"tavola/shared/constant"
)

const (
	fileMode = 0o600
	dirMode  = 0o755
)

// File persists the snapshot as a JSON document on local disk, replacing
// it atomically through a temp file and rename.
type File struct {
	path string
	otel otel.Otel
}

func NewFile(path string, otl otel.Otel) *File {
	return &File{
		path: path,
		otel: otl,
	}
}

func (f *File) Load(ctx context.Context) (snapshot model.Snapshot, err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("file.path", f.path)

	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return decodeSnapshot(nil)
	}

	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read %s: %w", f.path, err)
	}

	return decodeSnapshot(raw)
}

func (f *File) Save(ctx context.Context, snapshot model.Snapshot) (err error) {
	_, scope := f.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".file.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("file.path", f.path)

	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close() //nolint:errcheck,gosec

		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}

	if err = tmp.Chmod(fileMode); err != nil {
		tmp.Close() //nolint:errcheck,gosec

		return fmt.Errorf("failed to chmod %s: %w", tmp.Name(), err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	if err = os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}

	return nil
}
