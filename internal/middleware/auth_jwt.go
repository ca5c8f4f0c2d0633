package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tsizion/DokaBackend/internal/config"
	auth "github.com/tsizion/DokaBackend/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

const (
	CtxSubjectKey   = "subject_id" // string
	CtxTokenTypeKey = "token_type" // auth.TokenType
	CtxUserKey      = "user"       // *model.User
	CtxAdminKey     = "admin"      // *model.Admin
)

const msgNotAuthorized = "Not authorized. Please log in to access this resource."

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			//JWTをパースして検証する（署名・期限）
			token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
				if t.Method != jwt.SigningMethodHS256 {
					return nil, errors.New("unexpected signing method")
				}
				return []byte(cfg.JWTSecret), nil
			})
			if err != nil || token == nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			sub, ok := claims["sub"].(string)
			if !ok || sub == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			//user / admin
			typ, ok := claims["typ"].(string)
			if !ok || (typ != string(auth.TokenTypeUser) && typ != string(auth.TokenTypeAdmin)) {
				return c.JSON(http.StatusUnauthorized, errorJSON(msgNotAuthorized))
			}

			//contextへ保存
			c.Set(CtxSubjectKey, sub)
			c.Set(CtxTokenTypeKey, auth.TokenType(typ))

			return next(c)
		}
	}
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Status: "fail", Message: msg}
}

func subjectOf(c echo.Context, want auth.TokenType) (string, bool) {
	typ, ok := c.Get(CtxTokenTypeKey).(auth.TokenType)
	if !ok || typ != want {
		return "", false
	}
	sub, ok := c.Get(CtxSubjectKey).(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
