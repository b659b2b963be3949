package ipc

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/pagefx"
	"github.com/spf13/viper"
)

// GET /status
func statusHandler(s SessionInterface, sockPath string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSONPretty(http.StatusOK, StatusResponse{
			Status:  "ok",
			Message: "pagefx is running",
			Version: strings.Trim(pagefx.Version, "\n\r "),
			PID:     os.Getpid(),
			Socket:  sockPath,
			Config:  viper.ConfigFileUsed(),
			Session: s.Status(),
		}, "  ")
	}
}

// POST /start
func startHandler(s SessionInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req StartRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Error: "invalid start request"})
		}
		if err := s.Start(req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// GET /frame
func frameHandler(s SessionInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		img, phase := s.Frame()
		c.Response().Header().Set(phaseHeader, phase.String())
		if img == nil {
			return c.NoContent(http.StatusNoContent)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.Blob(http.StatusOK, "image/png", buf.Bytes())
	}
}

// POST /reset
func resetHandler(s SessionInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Reset()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /stop
func stopHandler(s SessionInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		s.Stop()
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}

// POST /load
func loadHandler(s SessionInterface) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoadRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Error: "invalid load request"})
		}
		if err := s.Load(req); err != nil {
			return c.JSON(http.StatusBadRequest, Response{Status: "error", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok", Message: fmt.Sprintf("loaded %d pages", len(req.Pages))})
	}
}

// POST /next and POST /prev
func stepHandler(step func() error) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := step(); err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, ErrNoDeck) || errors.Is(err, ErrEndOfDeck) {
				status = http.StatusConflict
			}
			return c.JSON(status, Response{Status: "error", Error: err.Error()})
		}
		return c.JSON(http.StatusOK, Response{Status: "ok"})
	}
}
