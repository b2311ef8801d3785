package config

import (
	"time"

	"github.com/goccy/go-yaml"
)

type HTTP struct {
	Address   InterpolatedString `yaml:"address"`
	Pprof     InterpolatedBool   `yaml:"pprof"`
	RateLimit RateLimit          `yaml:"rateLimit"`
}

type RateLimit struct {
	Enabled         InterpolatedBool     `yaml:"enabled"`
	Limit           InterpolatedFloat    `yaml:"limit"`
	Burst           InterpolatedInt      `yaml:"burst"`
	IdleTimeout     InterpolatedDuration `yaml:"idleTimeout"`
	CleanupInterval InterpolatedDuration `yaml:"cleanupInterval"`
}

func NewDefaultHTTPConfig() HTTP {
	return HTTP{
		Address: "${ZKPA_HTTP_ADDRESS:-:8080}",
		Pprof:   false,
		RateLimit: RateLimit{
			Enabled:         true,
			Limit:           10,
			Burst:           20,
			IdleTimeout:     InterpolatedDuration(10 * time.Minute),
			CleanupInterval: InterpolatedDuration(time.Minute),
		},
	}
}

func NewHTTPConfigCommentMap() yaml.CommentMap {
	return yaml.CommentMap{
		"":                           []*yaml.Comment{yaml.HeadComment(" Webserver configuration")},
		".address":                   []*yaml.Comment{yaml.HeadComment(" Webserver's listening address")},
		".pprof":                     []*yaml.Comment{yaml.HeadComment(" Expose profiling endpoints under /debug/pprof/")},
		".rateLimit":                 []*yaml.Comment{yaml.HeadComment(" Per client rate limiting of page requests")},
		".rateLimit.limit":           []*yaml.Comment{yaml.HeadComment(" Sustained requests per second")},
		".rateLimit.burst":           []*yaml.Comment{yaml.HeadComment(" Maximum burst of requests")},
		".rateLimit.idleTimeout":     []*yaml.Comment{yaml.HeadComment(" Forget clients without request for this long")},
		".rateLimit.cleanupInterval": []*yaml.Comment{yaml.HeadComment(" Interval between idle clients sweeps")},
	}
}
