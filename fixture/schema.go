package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const schemaName = "fixture.schema.json"

//go:embed fixture.schema.json
var schemaJSON []byte

var (
	schema      *jsonschema.Schema
	compileOnce sync.Once
	compileErr  error
)

func compileSchema() error {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal fixture schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaName, doc); err != nil {
			compileErr = fmt.Errorf("add fixture schema resource: %w", err)
			return
		}
		schema, err = compiler.Compile(schemaName)
		if err != nil {
			compileErr = fmt.Errorf("compile fixture schema: %w", err)
			return
		}
	})
	return compileErr
}

// validate checks a YAML or JSON document against the fixture schema.
// The document goes through JSON so the validator sees JSON values only.
func validate(data []byte) error {
	if err := compileSchema(); err != nil {
		return err
	}

	raw, err := single(data)
	if err != nil {
		return err
	}
	bs, err := json.Marshal(jsonable(raw))
	if err != nil {
		return fmt.Errorf("fixture is not representable as JSON: %w", err)
	}
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("fixture validation failed: %w", err)
	}
	return nil
}

// single decodes a stream that holds at most one YAML document.
func single(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	var extra yaml.Node
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return raw, nil
	case err != nil:
		return nil, fmt.Errorf("invalid YAML: %w", err)
	default:
		return nil, fmt.Errorf("a fixture must be a single YAML document")
	}
}

// jsonable turns mappings with non-string keys into string keyed ones.
// The instances themselves are decoded from the YAML nodes, so only the shape matters here.
func jsonable(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[key] = jsonable(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			out[fmt.Sprint(key)] = jsonable(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = jsonable(val)
		}
		return out
	default:
		return v
	}
}
