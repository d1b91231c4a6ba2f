package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

// Register wires up all API routes on the provided Echo instance.
func Register(e *echo.Echo, creator WorkCreator, reader BoardReader, boardID string, auth Authenticator, logger *log.Logger) {
	e.POST("/api/work", postWork(creator, auth, logger), DecompressRequests())
	e.GET("/api/dashboard/today", getDashboard(reader, boardID, auth))
	e.GET("/healthz", healthz())
}

func healthz() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
}
