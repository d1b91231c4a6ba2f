package api

import (
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"salesboard-api/domain"
)

// postWorkMaxSize caps the request body; work requests are tiny.
const postWorkMaxSize = 64 << 10

func postWork(creator WorkCreator, auth Authenticator, logger *log.Logger) echo.HandlerFunc {
	return func(c echo.Context) (err error) {
		ctx := c.Request().Context()
		metrics, ctx := newWorkRequestMetrics(ctx, logger)
		c.SetRequest(c.Request().WithContext(ctx))
		defer func() {
			metrics.Log(c.Response().Status, err)
		}()

		authStart := time.Now()
		authErr := auth.Verify(c.Request().Header)
		metrics.ObserveAuth(time.Since(authStart))
		if authErr != nil {
			metrics.SetErrorStage("auth")
			err = writeAuthError(c, authErr)
			return err
		}

		decodeStart := time.Now()
		lr := io.LimitReader(c.Request().Body, postWorkMaxSize)
		var req domain.WorkRequest
		decodeErr := sonic.ConfigStd.NewDecoder(lr).Decode(&req)
		metrics.ObserveDecode(time.Since(decodeStart))
		if decodeErr != nil {
			metrics.SetErrorStage("decode")
			err = writeError(c, http.StatusBadRequest, kindBadJSON, "invalid JSON body")
			return err
		}

		createStart := time.Now()
		item, createErr := creator.CreateWorkItem(ctx, req)
		metrics.ObserveCreate(time.Since(createStart))
		if createErr != nil {
			metrics.SetErrorStage("create")
			c.Logger().Error(createErr)
			err = writeWorkError(c, createErr)
			return err
		}
		metrics.SetCountry(item.Country)
		if item.Checklist != nil {
			metrics.SetTemplate(item.Checklist.Template)
		}

		encodeStart := time.Now()
		err = c.JSON(http.StatusOK, item)
		metrics.ObserveEncode(time.Since(encodeStart))
		if err != nil {
			metrics.SetErrorStage("encode_response")
		}
		return err
	}
}
