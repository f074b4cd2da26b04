package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reoring/numlit"
	"gopkg.in/yaml.v3"
)

// PresetFile is the document layout of a preset file. YAML files may hold
// several documents, each a PresetFile.
type PresetFile struct {
	Presets []numlit.PresetDocument `yaml:"presets" json:"presets" toml:"presets"`
}

// DecodePresets decodes preset documents. For YAML every document of a
// multi-document stream is read.
func DecodePresets(f Format, data []byte) ([]numlit.PresetDocument, error) {
	if f != FormatYAML {
		var pf PresetFile
		if err := Unmarshal(f, data, &pf); err != nil {
			return nil, err
		}
		return pf.Presets, nil
	}
	var out []numlit.PresetDocument
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var pf PresetFile
		if err := dec.Decode(&pf); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		out = append(out, pf.Presets...)
	}
	return out, nil
}

// LoadPresets reads a preset file and resolves every entry. Entries that
// extend another preset can only see presets that are already registered.
func LoadPresets(path string) ([]numlit.Preset, error) {
	docs, err := readPresetDocs(path)
	if err != nil {
		return nil, err
	}
	out := make([]numlit.Preset, 0, len(docs))
	for _, d := range docs {
		p, err := d.Preset()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// RegisterPresets reads a preset file and registers its entries in order, so
// later entries may extend earlier ones.
func RegisterPresets(path string) ([]numlit.Preset, error) {
	docs, err := readPresetDocs(path)
	if err != nil {
		return nil, err
	}
	out := make([]numlit.Preset, 0, len(docs))
	for _, d := range docs {
		p, err := d.Preset()
		if err != nil {
			return out, fmt.Errorf("%s: %w", path, err)
		}
		if err := numlit.Register(p); err != nil {
			return out, fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func readPresetDocs(path string) ([]numlit.PresetDocument, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	docs, err := DecodePresets(f, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return docs, nil
}
