// Package files stores generated invoice documents.
package files

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidName = errors.New("invalid document name")
)

// Store persists document bytes under a name and hands back a public link.
type Store interface {
	Store(ctx context.Context, name string, data []byte) (string, error)
	Open(ctx context.Context, link string) ([]byte, error)
}

// Disk keeps documents in a single directory and links them under PublicBase.
type Disk struct {
	Dir        string
	PublicBase string
}

func NewDisk(dir, publicBase string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &Disk{Dir: dir, PublicBase: strings.TrimRight(publicBase, "/")}, nil
}

func (d *Disk) Store(_ context.Context, name string, data []byte) (string, error) {
	clean, err := cleanName(name)
	if err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(d.Dir, clean+".*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(d.Dir, clean)); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	return d.PublicBase + "/" + clean, nil
}

// Open accepts either a link returned by Store or a bare document name.
func (d *Disk) Open(_ context.Context, link string) ([]byte, error) {
	clean, err := cleanName(path.Base(link))
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(d.Dir, clean))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	return b, err
}

func cleanName(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("%w %q", ErrInvalidName, name)
	}
	return name, nil
}
