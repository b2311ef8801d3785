package setup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/config"
)

func TestNewHandlerFromConfig(t *testing.T) {
	type testCase struct {
		Name               string
		Configure          func(conf *config.Config)
		Path               string
		ExpectedStatusCode int
	}

	testCases := []testCase{
		{
			Name:               "home",
			Path:               "/",
			ExpectedStatusCode: http.StatusOK,
		},
		{
			Name:               "logo",
			Path:               "/assets/logo.png",
			ExpectedStatusCode: http.StatusOK,
		},
		{
			Name:               "pprof disabled",
			Path:               "/debug/pprof/",
			ExpectedStatusCode: http.StatusNotFound,
		},
		{
			Name: "pprof enabled",
			Configure: func(conf *config.Config) {
				conf.HTTP.Pprof = true
			},
			Path:               "/debug/pprof/",
			ExpectedStatusCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			conf := config.NewDefaultConfig()
			conf.Site.Title = "ZKPA"

			if tc.Configure != nil {
				tc.Configure(conf)
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			handler, err := NewHandlerFromConfig(ctx, conf)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if e, g := tc.ExpectedStatusCode, res.Code; e != g {
				t.Errorf("res.Code: expected '%v', got '%v'", e, g)
			}
		})
	}
}

func TestNewHandlerFromConfigRateLimit(t *testing.T) {
	conf := config.NewDefaultConfig()
	conf.HTTP.RateLimit.Enabled = true
	conf.HTTP.RateLimit.Limit = 0
	conf.HTTP.RateLimit.Burst = 1

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler, err := NewHandlerFromConfig(ctx, conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	statuses := []int{}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/doc", nil)
		res := httptest.NewRecorder()

		handler.ServeHTTP(res, req)

		statuses = append(statuses, res.Code)
	}

	if e, g := http.StatusOK, statuses[0]; e != g {
		t.Errorf("statuses[0]: expected '%v', got '%v'", e, g)
	}

	if e, g := http.StatusTooManyRequests, statuses[1]; e != g {
		t.Errorf("statuses[1]: expected '%v', got '%v'", e, g)
	}
}

func TestNewHandlerFromConfigInvalidCleanupInterval(t *testing.T) {
	conf := config.NewDefaultConfig()
	conf.HTTP.RateLimit.Enabled = true
	conf.HTTP.RateLimit.CleanupInterval = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if _, err := NewHandlerFromConfig(ctx, conf); err == nil {
		t.Errorf("err: expected an error, got nil")
	}
}
