package ipc

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, session SessionInterface, sockPath string, gatherer prometheus.Gatherer) {
	e.GET("/status", statusHandler(session, sockPath))
	e.POST("/start", startHandler(session))
	e.GET("/frame", frameHandler(session))
	e.POST("/reset", resetHandler(session))
	e.POST("/stop", stopHandler(session))
	e.POST("/load", loadHandler(session))
	e.POST("/next", stepHandler(session.Next))
	e.POST("/prev", stepHandler(session.Prev))

	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	e.Any("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, Response{Status: "error", Error: "no such endpoint"})
	})
}
