package config

import (
	"fmt"
	"os"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

type interpolatedValues struct {
	Title   InterpolatedString `yaml:"title"`
	Level   InterpolatedInt    `yaml:"level"`
	Limit   InterpolatedFloat  `yaml:"limit"`
	Enabled InterpolatedBool   `yaml:"enabled"`
}

func TestInterpolatedValues(t *testing.T) {
	type testCase struct {
		Path        string
		Env         map[string]string
		ExpectError bool
		Assert      func(t *testing.T, parsed interpolatedValues)
	}

	testCases := []testCase{
		{
			Path: "testdata/environment/interpolated-values.yml",
			Env: map[string]string{
				"TEST_TITLE":   "ZKPA",
				"TEST_LIMIT":   "1.5",
				"TEST_ENABLED": "true",
			},
			Assert: func(t *testing.T, parsed interpolatedValues) {
				if e, g := InterpolatedString("ZKPA"), parsed.Title; e != g {
					t.Errorf("parsed.Title: expected '%v', got '%v'", e, g)
				}

				if e, g := InterpolatedInt(-4), parsed.Level; e != g {
					t.Errorf("parsed.Level: expected '%v', got '%v'", e, g)
				}

				if e, g := InterpolatedFloat(1.5), parsed.Limit; e != g {
					t.Errorf("parsed.Limit: expected '%v', got '%v'", e, g)
				}

				if e, g := InterpolatedBool(true), parsed.Enabled; e != g {
					t.Errorf("parsed.Enabled: expected '%v', got '%v'", e, g)
				}
			},
		},
		{
			Path: "testdata/environment/interpolated-values.yml",
			Env: map[string]string{
				"TEST_LIMIT": "not-a-number",
			},
			ExpectError: true,
		},
	}

	for idx, tc := range testCases {
		t.Run(fmt.Sprintf("Case #%d", idx), func(t *testing.T) {
			data, err := os.ReadFile(tc.Path)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			getEnv = func(key string) string {
				return tc.Env[key]
			}
			defer func() {
				getEnv = os.Getenv
			}()

			var parsed interpolatedValues

			err = yaml.Unmarshal(data, &parsed)

			if tc.ExpectError {
				if err == nil {
					t.Fatalf("expected an error, got nil")
				}

				return
			}

			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if tc.Assert != nil {
				tc.Assert(t, parsed)
			}
		})
	}
}
