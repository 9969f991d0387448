package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"

	"github.com/fluxion-io/fluxion/pkg/application"
	"github.com/fluxion-io/fluxion/pkg/configuration"
	"github.com/fluxion-io/fluxion/pkg/constants"
	"github.com/fluxion-io/fluxion/pkg/httpapi"
	"github.com/fluxion-io/fluxion/pkg/metrics"
	"github.com/fluxion-io/fluxion/pkg/middleware"
	"github.com/fluxion-io/fluxion/pkg/server"
)

type DefaultOptions struct {
	Logger        *logrus.Logger
	Configuration *configuration.Configuration
	Application   application.Application
	Pool          *pgxpool.Pool
}

// Default assembles the production middleware stack around the registered
// controllers: logging and tracing first, then context plumbing, CORS and
// rate limiting.
func Default(options *DefaultOptions) (*server.HTTPServer, error) {
	app := options.Application

	middlewares := []mux.MiddlewareFunc{
		middleware.WithLogger(options.Logger),
		middleware.Provide(constants.AppKey, app),
		middleware.Provide(constants.PoolKey, options.Pool),
		middleware.Cors(strings.Split(options.Configuration.AllowedOrigins, ",")...),
	}

	if options.Configuration.RateLimit.Enabled {
		var store limiter.Store
		switch options.Configuration.RateLimit.Storage {
		case "redis":
			redisStore, err := middleware.NewRedisStore(options.Configuration.RateLimit.RedisURL)
			if err != nil {
				options.Logger.WithError(err).Warn("redis rate limit store unavailable, falling back to memory")
				store = middleware.NewMemoryStore()
			} else {
				store = redisStore
			}
		default:
			store = middleware.NewMemoryStore()
		}
		middlewares = append(middlewares, middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerPeriod: options.Configuration.RateLimit.GlobalRPS,
			Store:             store,
		}))
	}

	middlewares = append(middlewares, middleware.RequestParams())
	app.RegisterMiddleware(middlewares...)

	if options.Configuration.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(options.Configuration.Prometheus.Path))
	}

	return server.NewHTTPServer(app, notFound(), methodNotAllowed()), nil
}

func notFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found", nil)
	})
}

func methodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = httpapi.WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})
}
