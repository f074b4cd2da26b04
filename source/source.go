package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a document encoding.
type Format int

const (
	FormatYAML Format = iota
	FormatJSON
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatTOML:
		return "toml"
	}
	return "yaml"
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("source: unknown document extension %q", filepath.Ext(path))
}

// Driver decodes documents of one format. The defaults are yaml.v3, go-json
// and go-toml; SetDriver swaps one out.
type Driver interface {
	Unmarshal(data []byte, v any) error
	Name() string
}

type yamlDriver struct{}

func (yamlDriver) Unmarshal(data []byte, v any) error { return yaml.Unmarshal(data, v) }
func (yamlDriver) Name() string                       { return "yaml.v3" }

type jsonDriver struct{}

func (jsonDriver) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonDriver) Name() string                       { return "go-json" }

type tomlDriver struct{}

func (tomlDriver) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }
func (tomlDriver) Name() string                       { return "go-toml" }

var (
	driverMu sync.RWMutex
	drivers  = map[Format]Driver{
		FormatYAML: yamlDriver{},
		FormatJSON: jsonDriver{},
		FormatTOML: tomlDriver{},
	}
)

// SetDriver replaces the driver for f; nil restores the default.
func SetDriver(f Format, d Driver) {
	if d == nil {
		switch f {
		case FormatJSON:
			d = jsonDriver{}
		case FormatTOML:
			d = tomlDriver{}
		default:
			d = yamlDriver{}
		}
	}
	driverMu.Lock()
	drivers[f] = d
	driverMu.Unlock()
}

// DriverFor returns the current driver for f.
func DriverFor(f Format) Driver {
	driverMu.RLock()
	d := drivers[f]
	driverMu.RUnlock()
	return d
}

// Unmarshal decodes data of format f into v.
func Unmarshal(f Format, data []byte, v any) error {
	d := DriverFor(f)
	if err := d.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s (%s): %w", f, d.Name(), err)
	}
	return nil
}

// ReadFile reads path and decodes it by extension.
func ReadFile(path string, v any) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := Unmarshal(f, data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
