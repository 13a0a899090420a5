package signin

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"shopfloor/http-server/response"
	"shopfloor/internal/middleware/auth"
)

type TokenIssuer interface {
	SignIn(email, password string) (string, time.Time, error)
}

type Request struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Response struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func SignIn(log *slog.Logger, issuer TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.SignIn"

		var req Request
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			response.BadRequest(w, r, "ошибка парсинга JSON")
			return
		}

		token, expiresAt, err := issuer.SignIn(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Info("sign-in rejected", slog.String("op", op), slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error{Error: "неверный email или пароль"})
				return
			}
			response.Fail(w, r, log, op, err)
			return
		}

		render.JSON(w, r, Response{Token: token, ExpiresAt: expiresAt})
	}
}
