// Package auth guards routes with an HS256 bearer token.
package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		log.Info("bearer auth enabled")

		key := []byte(secret)

		fn := func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				log.Info("missing bearer token", slog.String("path", r.URL.Path))
				unauthorized(w, r)
				return
			}

			token, err := jwt.Parse(raw, func(*jwt.Token) (any, error) {
				return key, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				log.Info("invalid bearer token", slog.String("path", r.URL.Path), sl.Err(err))
				unauthorized(w, r)
				return
			}

			sub, _ := token.Claims.GetSubject()
			log.Debug("request authorized", slog.String("sub", sub))

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="fyyur"`)
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("unauthorized"))
}
