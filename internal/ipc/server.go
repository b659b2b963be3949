package ipc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/matjam/pagefx/internal/middleware"
	"go.uber.org/multierr"
)

const shutdownTimeout = 5 * time.Second

// NewEcho builds the HTTP handler for a session without binding it.
func NewEcho(session *Session, sockPath string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, session, sockPath, session.Registry())
	return e
}

// Serve listens on the unix socket at sockPath until ctx is cancelled or
// the session is stopped, then shuts the server down and removes the
// socket.
func Serve(ctx context.Context, session *Session, sockPath string) error {
	if _, err := os.Stat(sockPath); err == nil {
		_ = os.Remove(sockPath)
	}

	listener, err := net.Listen("unix", sockPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", sockPath, err)
	}

	e := NewEcho(session, sockPath)
	e.Listener = listener

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", sockPath)
		serveErr <- e.StartServer(new(http.Server))
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return multierr.Append(fmt.Errorf("socket server error: %w", err), removeSocket(sockPath))
	case <-ctx.Done():
	case <-session.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err = multierr.Append(e.Shutdown(shutdownCtx), removeSocket(sockPath))
	log.Info("Socket server stopped")
	return err
}

func removeSocket(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing socket: %w", err)
	}
	return nil
}
