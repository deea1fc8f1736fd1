package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ErrUnsupportedFormat is returned for unknown catalog file extensions.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data, format)
}

// Parse decodes and validates catalog bytes.
func Parse(data []byte, format Format) (*Catalog, error) {
	var c Catalog
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parse catalog yaml: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), &c); err != nil {
			return nil, fmt.Errorf("parse catalog toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	c.reindex()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Write encodes the catalog to w.
func Write(w io.Writer, c *Catalog, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close() //nolint:errcheck // best-effort close
		enc.SetIndent(2)
		return enc.Encode(c)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile encodes the catalog into path, choosing the format by extension.
func WriteFile(path string, c *Catalog) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, c, format); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// Canonical returns the YAML encoding used for comparisons.
func Canonical(c *Catalog) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, c, FormatYAML); err != nil {
		return "", err
	}
	return buf.String(), nil
}
