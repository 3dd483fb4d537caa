package glyph

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"
)

// Font wraps a parsed sfnt font together with a reusable parse buffer.
// The buffer is reused across calls, so a Font must not be shared between
// goroutines without external synchronization.
type Font struct {
	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// Parse parses TTF/OTF font data.
func Parse(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse font: %w", err)
	}
	return &Font{sfnt: f}, nil
}

// LoadFile reads and parses a font file.
func LoadFile(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: read %s: %w", path, err)
	}
	return Parse(data)
}
