package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"lodge/config"
	"lodge/infras/otel"
	"lodge/shared/constant"
	"lodge/transport/http/response"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	Logging(next http.Handler) http.Handler
	Recovery(next http.Handler) http.Handler
	CORS(next http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
}

func NewAppMiddleware(otel otel.Otel, config *config.Config) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		spanName := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, spanName)
		defer scope.End()

		wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.Header.Get(constant.RequestHeaderUserAgent),
			"http.host":       r.Host,
			"http.source":     clientIP(r),
		})

		next.ServeHTTP(wrapped, r.WithContext(ctx))

		scope.SetAttributes(map[string]any{
			"http.status_code": wrapped.Status(),
		})
	})
}

func (a *appMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(wrapped, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.Status()).
			Str("source", clientIP(r)).
			Str("user_agent", r.Header.Get(constant.RequestHeaderUserAgent)).
			Dur("elapsed", time.Since(start)).
			Msg("request completed")
	})
}

func (a *appMiddleware) Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				err, ok := rec.(error)
				if !ok {
					err = errors.Errorf("%v", rec)
				}

				log.Error().Stack().Err(errors.WithStack(err)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Msg("panic recovered")

				response.WithError(w, err)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	corsConfig := a.config.App.CORS
	if !corsConfig.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowCredentials: corsConfig.AllowCredentials,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedOrigins:   corsConfig.AllowedOrigins,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})(next)
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get(constant.RequestHeaderForwardedFor); forwarded != "" {
		parts := strings.Split(forwarded, ",")

		return strings.TrimSpace(parts[0])
	}

	if realIP := r.Header.Get(constant.RequestHeaderRealIP); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
