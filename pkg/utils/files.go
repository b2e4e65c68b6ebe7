// Package utils provides small helpers shared across the emulator.
package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads a ROM image from the given path. Plain files are
// read as-is; .zip, .7z and .gz archives are opened and the first
// file with a recognised ROM extension (falling back to the first
// file) is extracted.
func LoadFile(path string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return loadZip(path)
	case ".7z":
		return load7z(path)
	case ".gz":
		return loadGzip(path)
	default:
		return os.ReadFile(path)
	}
}

func isROMName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gb", ".gbc", ".dmg", ".bin", ".rom":
		return true
	}
	return false
}

func loadZip(path string) ([]byte, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening zip %s: %w", path, err)
	}
	defer r.Close()

	var candidate *zip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if candidate == nil || isROMName(f.Name) {
			candidate = f
		}
		if isROMName(f.Name) {
			break
		}
	}
	if candidate == nil {
		return nil, fmt.Errorf("no files in archive %s", path)
	}

	rc, err := candidate.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s in %s: %w", candidate.Name, path, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func load7z(path string) ([]byte, error) {
	r, err := sevenzip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening 7z %s: %w", path, err)
	}
	defer r.Close()

	var candidate *sevenzip.File
	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if candidate == nil || isROMName(f.Name) {
			candidate = f
		}
		if isROMName(f.Name) {
			break
		}
	}
	if candidate == nil {
		return nil, fmt.Errorf("no files in archive %s", path)
	}

	rc, err := candidate.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s in %s: %w", candidate.Name, path, err)
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func loadGzip(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening gzip %s: %w", path, err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
