// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package properties

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/agilira/argus"
	"gopkg.in/yaml.v3"
)

// FileSource reads properties from a file. The format is chosen by
// extension:
//   - .properties: key=value grammar, values kept verbatim as strings;
//   - .yaml/.yml: gopkg.in/yaml.v3, nested mappings flattened with '.';
//   - .json, .toml: parsed by argus and flattened the same way.
//
// Sequences are flattened as key[i].
type FileSource struct {
	path string
}

// NewFileSource returns a source reading the file at path on every Load.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file [" + s.path + "]"
}

func (s *FileSource) Load(ctx context.Context) (Properties, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("error reading property file: %w", err)
	}

	props, err := parseFile(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("error parsing property file %s: %w", s.path, err)
	}

	return props, nil
}

func parseFile(path string, data []byte) (Properties, error) {
	if strings.EqualFold(filepath.Ext(path), ".properties") {
		return parseProperties(bytes.NewReader(data))
	}

	switch format := argus.DetectFormat(path); format {
	case argus.FormatYAML:
		var tree map[string]any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
		return flatten(tree), nil

	case argus.FormatJSON, argus.FormatTOML:
		tree, err := argus.ParseConfig(data, format)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", format.String(), err)
		}
		return flatten(tree), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

func flatten(tree map[string]any) Properties {
	props := make(Properties)
	for k, v := range tree {
		flattenInto(props, k, v)
	}

	return props
}

func flattenInto(props Properties, key string, value any) {
	switch v := value.(type) {
	case map[string]any:
		for k, child := range v {
			flattenInto(props, key+"."+k, child)
		}
	case map[any]any:
		for k, child := range v {
			flattenInto(props, key+"."+fmt.Sprint(k), child)
		}
	case []any:
		for i, child := range v {
			flattenInto(props, key+"["+strconv.Itoa(i)+"]", child)
		}
	case nil:
		props[key] = ""
	case string:
		props[key] = v
	case float64:
		props[key] = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		props[key] = fmt.Sprint(v)
	}
}
