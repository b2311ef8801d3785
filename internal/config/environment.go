package config

import (
	"os"
	"strconv"
	"time"

	"github.com/drone/envsubst"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

var getEnv = os.Getenv

// unmarshalInterpolated decodes a scalar as a string, expands its environment
// references and converts the result with parse.
func unmarshalInterpolated[T any](unmarshal func(any) error, parse func(string) (T, error)) (T, error) {
	var (
		str  string
		zero T
	)

	if err := unmarshal(&str); err != nil {
		return zero, errors.WithStack(err)
	}

	str, err := envsubst.Eval(str, getEnv)
	if err != nil {
		return zero, errors.WithStack(err)
	}

	value, err := parse(str)
	if err != nil {
		return zero, errors.Wrapf(err, "could not parse interpolated value '%s'", str)
	}

	return value, nil
}

type InterpolatedString string

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (is *InterpolatedString) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(str string) (string, error) {
		return str, nil
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*is = InterpolatedString(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedString)

type InterpolatedInt int

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ii *InterpolatedInt) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(str string) (int64, error) {
		return strconv.ParseInt(str, 10, 32)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ii = InterpolatedInt(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedInt)

type InterpolatedFloat float64

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ifl *InterpolatedFloat) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, func(str string) (float64, error) {
		return strconv.ParseFloat(str, 64)
	})
	if err != nil {
		return errors.WithStack(err)
	}

	*ifl = InterpolatedFloat(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedFloat)

type InterpolatedBool bool

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (ib *InterpolatedBool) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, strconv.ParseBool)
	if err != nil {
		return errors.WithStack(err)
	}

	*ib = InterpolatedBool(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedBool)

type InterpolatedDuration time.Duration

// UnmarshalYAML implements yaml.InterfaceUnmarshaler.
func (id *InterpolatedDuration) UnmarshalYAML(unmarshal func(any) error) error {
	value, err := unmarshalInterpolated(unmarshal, time.ParseDuration)
	if err != nil {
		return errors.WithStack(err)
	}

	*id = InterpolatedDuration(value)

	return nil
}

var _ yaml.InterfaceUnmarshaler = new(InterpolatedDuration)

// MarshalYAML implements yaml.InterfaceMarshaler.
func (id InterpolatedDuration) MarshalYAML() (any, error) {
	return time.Duration(id).String(), nil
}

var _ yaml.InterfaceMarshaler = InterpolatedDuration(0)
