package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/containerd/errdefs"
	"github.com/containerd/log"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a manifest document.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("manifest %q: unsupported extension %q: %w", path, filepath.Ext(path), errdefs.ErrInvalidArgument)
	}
}

// Load reads and decodes the manifest at path.
func Load(ctx context.Context, path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	log.G(ctx).WithField("path", path).WithField("format", format).Debug("loading manifest")
	m, err := Decode(ctx, format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Decode decodes and validates a manifest. Whatever the format, the document
// is first normalized to JSON so that a single schema covers all of them.
func Decode(ctx context.Context, format Format, data []byte) (*Manifest, error) {
	var raw any
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode json manifest: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode yaml manifest: %w", err)
		}
	case TOML:
		var doc map[string]any
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode toml manifest: %w", err)
		}
		raw = doc
	default:
		return nil, fmt.Errorf("unknown manifest format %q: %w", format, errdefs.ErrInvalidArgument)
	}

	b, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize manifest: %w", err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("normalize manifest: %w", err)
	}
	if err := Validate(doc); err != nil {
		return nil, err
	}

	var m Manifest
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	log.G(ctx).WithField("arguments", len(m.Arguments)).Debug("decoded manifest")
	return &m, nil
}
