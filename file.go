package bmp

import (
	"fmt"
	"os"
)

// ReadFile loads the BMP at path into a new File.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bmp: read %s: %w", path, err)
	}
	return FromBytes(data), nil
}

// WriteFile stores the buffer to path byte for byte. Parsed structures
// are never re-serialized; mutations were already applied in place.
func (f *File) WriteFile(path string) error {
	if err := os.WriteFile(path, f.data, 0o644); err != nil {
		return fmt.Errorf("bmp: write %s: %w", path, err)
	}
	return nil
}
