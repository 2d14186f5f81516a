package configuration

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"

	"github.com/iotaledger/dynserde/internal/jsonbackend"
	"github.com/iotaledger/dynserde/value"
)

// ErrInvalidRoot is returned if a config document is not an object.
var ErrInvalidRoot = errors.New("config root must be an object")

// lowerKeys returns v with all object keys lower cased. Later keys win if two keys only differ by case.
func lowerKeys(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindObject:
		pairs := v.Pairs()
		for i := range pairs {
			pairs[i].Key = strings.ToLower(pairs[i].Key)
			pairs[i].Value = lowerKeys(pairs[i].Value)
		}

		return value.Object(pairs...)
	case value.KindArray:
		elements := v.Elements()
		lowered := make([]value.Value, len(elements))
		for i, element := range elements {
			lowered[i] = lowerKeys(element)
		}

		return value.Array(lowered...)
	default:
		return v
	}
}

func settingsOf(v value.Value) (map[string]interface{}, error) {
	if v.Kind() != value.KindObject {
		return nil, errors.Wrapf(ErrInvalidRoot, "got %s", v.Kind())
	}

	//nolint:forcetypeassert // objects convert to maps
	return lowerKeys(v).Interface().(map[string]interface{}), nil
}

func settingsFromInterface(in interface{}) (map[string]interface{}, error) {
	v, err := value.FromInterface(in)
	if err != nil {
		return nil, err
	}

	return settingsOf(v)
}

// JSONLowerParser implements a JSON parser on top of the erased serialization layer.
// all config keys are lower cased.
type JSONLowerParser struct{}

// Unmarshal parses the given JSON bytes.
func (p *JSONLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	v, err := jsonbackend.Unmarshal(b, value.Seed())
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse JSON config")
	}

	return settingsOf(v)
}

// Marshal marshals the given config map to JSON bytes. Keys are sorted.
func (p *JSONLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	v, err := value.FromInterface(o)
	if err != nil {
		return nil, err
	}

	return jsonbackend.Marshal(v)
}

// YAMLLowerParser implements a YAML parser.
// all config keys are lower cased.
type YAMLLowerParser struct{}

// Unmarshal parses the given YAML bytes.
func (p *YAMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, errors.Wrap(err, "unable to parse YAML config")
	}
	if out == nil {
		return map[string]interface{}{}, nil
	}

	return settingsFromInterface(out)
}

// Marshal marshals the given config map to YAML bytes.
func (p *YAMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return yaml.Marshal(o)
}

// TOMLLowerParser implements a TOML parser.
// all config keys are lower cased.
type TOMLLowerParser struct{}

// Unmarshal parses the given TOML bytes.
func (p *TOMLLowerParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := toml.Unmarshal(b, &out); err != nil {
		return nil, errors.Wrap(err, "unable to parse TOML config")
	}
	if out == nil {
		return map[string]interface{}{}, nil
	}

	return settingsFromInterface(out)
}

// Marshal marshals the given config map to TOML bytes.
func (p *TOMLLowerParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return toml.Marshal(o)
}
