package datastore

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/projmarks/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec serializes a mark store
type Codec interface {
	Name() string
	Marshal(store types.MarkStore) ([]byte, error)
	Unmarshal(data []byte, store *types.MarkStore) error
}

// CodecFor picks the codec matching the extension of path. Unknown
// extensions use JSON.
func CodecFor(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlCodec{}
	case ".toml":
		return tomlCodec{}
	default:
		return jsonCodec{}
	}
}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(store types.MarkStore) ([]byte, error) {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, store *types.MarkStore) error {
	return json.Unmarshal(data, store)
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Marshal(store types.MarkStore) ([]byte, error) {
	return yaml.Marshal(store)
}

func (yamlCodec) Unmarshal(data []byte, store *types.MarkStore) error {
	return yaml.Unmarshal(data, store)
}

type tomlCodec struct{}

func (tomlCodec) Name() string { return "toml" }

func (tomlCodec) Marshal(store types.MarkStore) ([]byte, error) {
	return toml.Marshal(store)
}

func (tomlCodec) Unmarshal(data []byte, store *types.MarkStore) error {
	return toml.Unmarshal(data, store)
}
