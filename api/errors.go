package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"salesboard-api/board"
	"salesboard-api/workflow"
)

// Stable error kinds of the JSON error envelope.
const (
	kindUnauthorized    = "UNAUTHORIZED"
	kindServerMisconfig = "SERVER_MISCONFIGURED"
	kindBadJSON         = "BAD_JSON"
	kindValidationError = "VALIDATION_ERROR"
	kindTemplateUnknown = "TEMPLATE_UNKNOWN"
	kindCountryUnknown  = "COUNTRY_UNKNOWN"
	kindUpstreamError   = "UPSTREAM_ERROR"
)

type errorBody struct {
	Error       string   `json:"error"`
	Message     string   `json:"message,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
	Available   []string `json:"available,omitempty"`
	Details     string   `json:"details,omitempty"`
}

func writeError(c echo.Context, status int, kind, message string) error {
	return c.JSON(status, errorBody{Error: kind, Message: message})
}

// writeAuthError maps authenticator failures onto the envelope.
func writeAuthError(c echo.Context, err error) error {
	if errors.Is(err, ErrNoServerKey) {
		return writeError(c, http.StatusInternalServerError, kindServerMisconfig, err.Error())
	}
	return writeError(c, http.StatusUnauthorized, kindUnauthorized, err.Error())
}

// writeWorkError maps orchestration failures onto the envelope. Upstream
// failures mirror the board's status code; configuration gaps read as 500s.
func writeWorkError(c echo.Context, err error) error {
	var vErr *workflow.ValidationError
	if errors.As(err, &vErr) {
		return writeError(c, http.StatusBadRequest, kindValidationError, vErr.Error())
	}

	var tErr *workflow.UnknownTemplateError
	if errors.As(err, &tErr) {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error:     kindTemplateUnknown,
			Message:   tErr.Error(),
			Available: tErr.Available,
		})
	}

	var cErr *workflow.UnknownCountryError
	if errors.As(err, &cErr) {
		return c.JSON(http.StatusBadRequest, errorBody{
			Error:       kindCountryUnknown,
			Message:     cErr.Error(),
			Suggestions: cErr.Suggestions,
		})
	}

	return writeUpstreamError(c, err)
}

// writeUpstreamError handles board-call failures shared by all handlers.
func writeUpstreamError(c echo.Context, err error) error {
	if errors.Is(err, workflow.ErrBoardNotConfigured) || errors.Is(err, board.ErrNotConfigured) {
		return writeError(c, http.StatusInternalServerError, kindServerMisconfig, err.Error())
	}

	var apiErr *board.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return c.JSON(status, errorBody{
			Error:   kindUpstreamError,
			Message: "board request failed",
			Details: apiErr.Body,
		})
	}

	return writeError(c, http.StatusInternalServerError, kindUpstreamError, err.Error())
}
