package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/annuity-calculator/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// NewRouter builds the gin engine with recovery and request logging.
func NewRouter(engine Engine, logger *logging.Logger) *gin.Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger.WithComponent(logging.ComponentHTTP)))
	NewHandler(engine, logger).RegisterRoutes(r)
	return r
}

func requestLogger(logger *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("request",
			logging.FieldMethod, c.Request.Method,
			logging.FieldPath, c.Request.URL.Path,
			logging.FieldStatusCode, c.Writer.Status(),
			logging.FieldDuration, time.Since(start).Milliseconds(),
		)
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *logging.Logger) error {
	server := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
