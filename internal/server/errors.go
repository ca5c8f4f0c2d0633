package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tsizion/DokaBackend/internal/handler"
	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const msgInternal = "Something went wrong"

// handlerが返したエラーをまとめて {status, message} にする
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, body := toResponse(err, c)
	if code >= http.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, body)
	}
	if werr != nil {
		log.Errorf("write error response: %v", werr)
	}
}

func toResponse(err error, c echo.Context) (int, handler.ErrorResponse) {
	if he, ok := usecase.AsHTTPError(err); ok {
		return he.Status, handler.ErrorResponse{Status: handler.StatusText(he.Status), Message: he.Message, Errors: he.Errors}
	}

	var ee *echo.HTTPError
	if errors.As(err, &ee) {
		msg := fmt.Sprint(ee.Message)
		switch {
		case ee.Code == http.StatusNotFound:
			msg = fmt.Sprintf("Cannot find %s on this server", c.Request().URL.Path)
		case ee.Code >= http.StatusInternalServerError:
			msg = msgInternal
		}
		return ee.Code, handler.ErrorResponse{Status: handler.StatusText(ee.Code), Message: msg}
	}

	return http.StatusInternalServerError, handler.ErrorResponse{Status: "error", Message: msgInternal}
}
