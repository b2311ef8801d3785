package setup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/zkpa/zkpa/internal/assets"
	"github.com/zkpa/zkpa/internal/config"
	"github.com/zkpa/zkpa/internal/pprof"
	"github.com/zkpa/zkpa/internal/ratelimit"
	"github.com/zkpa/zkpa/internal/site"
	"golang.org/x/time/rate"

	sloghttp "github.com/samber/slog-http"
)

const pprofPrefix = "/debug/pprof"

func NewHandlerFromConfig(ctx context.Context, conf *config.Config) (http.Handler, error) {
	mux := &http.ServeMux{}

	slogMiddleware := sloghttp.New(slog.Default())

	mux.Handle(assets.Prefix, slogMiddleware(assets.NewHandler(assets.Prefix)))

	if conf.HTTP.Pprof {
		slog.WarnContext(ctx, "profiling endpoints enabled", slog.String("prefix", pprofPrefix))
		mux.Handle(pprofPrefix+"/", pprof.NewHandler(pprofPrefix))
	}

	var siteHandler http.Handler = site.NewHandler(NewRendererFromConfig(conf))

	if conf.HTTP.RateLimit.Enabled {
		rateLimiter := ratelimit.New(rate.Limit(conf.HTTP.RateLimit.Limit), int(conf.HTTP.RateLimit.Burst))

		cleanupInterval := time.Duration(conf.HTTP.RateLimit.CleanupInterval)
		if cleanupInterval <= 0 {
			return nil, errors.Errorf("invalid rate limit cleanup interval '%s'", cleanupInterval)
		}

		go rateLimiter.Run(ctx, cleanupInterval, time.Duration(conf.HTTP.RateLimit.IdleTimeout))

		siteHandler = rateLimiter.Middleware(ratelimit.RemoteIP)(siteHandler)
	}

	mux.Handle("/", slogMiddleware(siteHandler))

	return mux, nil
}

func NewRendererFromConfig(conf *config.Config) *site.Renderer {
	return site.NewRenderer(string(conf.Site.Title))
}
