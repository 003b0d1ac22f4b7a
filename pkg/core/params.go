package core

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
)

// Params is the named-parameter form of a Build call.
type Params struct {
	Keywords string   `mapstructure:"keywords"`
	Columns  []string `mapstructure:"columns"`
	Options  `mapstructure:",squash"`
}

var requiredParams = []string{"keywords", "columns"}

// DecodeParams converts a named-parameter map into Params. Missing required
// keys, values of the wrong type and unrecognized keys are all reported in a
// single *ConfigError.
func DecodeParams(params map[string]any) (*Params, error) {
	var problems *multierror.Error
	for _, key := range requiredParams {
		if v, ok := params[key]; !ok || v == nil {
			problems = multierror.Append(problems, fmt.Errorf("%s is required", key))
		}
	}

	var p Params
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &p,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create parameter decoder: %w", err)
	}
	decodeErr := decoder.Decode(params)
	if decodeErr != nil {
		if merr, ok := decodeErr.(*mapstructure.Error); ok {
			for _, msg := range merr.Errors {
				problems = multierror.Append(problems, fmt.Errorf("%s", msg))
			}
		} else {
			problems = multierror.Append(problems, decodeErr)
		}
	}

	if decodeErr == nil && p.Columns == nil && params["columns"] != nil {
		// a typed nil slice
		problems = multierror.Append(problems, fmt.Errorf("columns is required"))
	}
	if op, ok := params["operator"].(string); ok && op == "" {
		problems = multierror.Append(problems, fmt.Errorf("operator must not be empty"))
	}

	if problems.ErrorOrNil() != nil {
		return nil, newConfigError(problems)
	}
	return &p, nil
}

// BuildFromParams decodes params and calls Build.
func BuildFromParams(params map[string]any) (Result, error) {
	p, err := DecodeParams(params)
	if err != nil {
		return nil, err
	}
	return Build(p.Keywords, p.Columns, p.Options)
}
