package handler

import (
	"net/http"

	"github.com/tsizion/DokaBackend/internal/usecase"

	"github.com/labstack/echo/v4"
)

type successResponse struct {
	Status  string      `json:"status"`
	Results *int        `json:"results,omitempty"`
	Total   *int64      `json:"total,omitempty"`
	Token   string      `json:"token,omitempty"`
	Data    interface{} `json:"data"`
}

type messageResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse は失敗時の共通形
type ErrorResponse struct {
	Status  string               `json:"status"`
	Message string               `json:"message"`
	Errors  []usecase.FieldError `json:"errors,omitempty"`
}

// 4xxはfail、5xxはerror
func StatusText(code int) string {
	if code >= http.StatusInternalServerError {
		return "error"
	}
	return "fail"
}

func ok(c echo.Context, code int, data echo.Map) error {
	return c.JSON(code, successResponse{Status: "success", Data: data})
}

// 一覧はresultsに件数を入れる
func okList(c echo.Context, key string, items interface{}, n int) error {
	return c.JSON(http.StatusOK, successResponse{Status: "success", Results: &n, Data: echo.Map{key: items}})
}

// ページング一覧。totalは全件数
func okPage(c echo.Context, key string, items interface{}, n int, total int64) error {
	return c.JSON(http.StatusOK, successResponse{Status: "success", Results: &n, Total: &total, Data: echo.Map{key: items}})
}

func okDeleted(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, messageResponse{Status: "success", Message: message, Data: nil})
}

// HTTPErrorはそのまま返す。それ以外はecho側（500）へ
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Status: StatusText(he.Status), Message: he.Message, Errors: he.Errors})
	}
	return err
}

// bindとvalidateをまとめて行う
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return usecase.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.Validate(req)
}
