package config

import (
	"math"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/go-viper/mapstructure/v2"

	"github.com/smykla-skalski/commitlint/pkg/config"
)

// CustomDecoderConfig returns a mapstructure decoder config with custom type
// hooks for levels, applicabilities, casing modes, limits and the shorthand
// forms of allowed values and prompt choices.
func CustomDecoderConfig(result any) *mapstructure.DecoderConfig {
	return &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			levelHookFunc(),
			applicabilityHookFunc(),
			caseModeHookFunc(),
			limitHookFunc(),
			alignHookFunc(),
			stringToAllowedValueHookFunc(),
			stringToChoiceHookFunc(),
		),
		WeaklyTypedInput: true,
		TagName:          "koanf",
		Result:           result,
	}
}

// levelHookFunc accepts 0|1|2 as numbers or strings and off|warning|error.
// Out-of-range numbers pass through so the validator can report them.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func levelHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Level]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseLevel(v)
		case int:
			return config.Level(v), nil
		case int64:
			return config.Level(v), nil
		case float64:
			if v != math.Trunc(v) {
				return nil, errors.Wrapf(config.ErrInvalidLevel, "%v, must be a whole number", v)
			}

			return config.Level(int(v)), nil
		default:
			return data, nil
		}
	}
}

//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func applicabilityHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Applicability]() {
			return data, nil
		}

		if v, ok := data.(string); ok {
			return config.ParseApplicability(v)
		}

		return data, nil
	}
}

// caseModeHookFunc normalizes aliases such as "lowercase". Unknown modes are
// kept verbatim and rejected by the validator.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func caseModeHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.CaseMode]() {
			return data, nil
		}

		v, ok := data.(string)
		if !ok {
			return data, nil
		}

		if mode, err := config.ParseCaseMode(v); err == nil {
			return mode, nil
		}

		return config.CaseMode(v), nil
	}
}

//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func limitHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Limit]() {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return config.ParseLimit(v)
		case int:
			return config.LimitFromInt(int64(v))
		case int64:
			return config.LimitFromInt(v)
		case float64:
			return config.LimitFromInt(int64(v))
		default:
			return data, nil
		}
	}
}

//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func alignHookFunc() mapstructure.DecodeHookFunc {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeFor[config.Align]() {
			return data, nil
		}

		if v, ok := data.(string); ok {
			return config.ParseAlign(v)
		}

		return data, nil
	}
}

// stringToAllowedValueHookFunc lets enum values be written as bare tokens.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToAllowedValueHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeFor[config.AllowedValue]() {
			return data, nil
		}

		v, _ := data.(string)

		return config.AllowedValue{Value: v}, nil
	}
}

// stringToChoiceHookFunc lets prompt choices be written as bare tokens.
//
//nolint:ireturn // required by mapstructure.DecodeHookFunc interface
func stringToChoiceHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != reflect.TypeFor[config.Choice]() {
			return data, nil
		}

		v, _ := data.(string)

		return config.Choice{Value: v}, nil
	}
}
