package createSession

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/service"
	"meetapp/internal/storage"
)

type SessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SessionResponse struct {
	response.Response
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserAuthenticator
type UserAuthenticator interface {
	Authenticate(email, password string) (models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TokenIssuer
type TokenIssuer interface {
	NewToken(userID int) (string, error)
}

func New(log *slog.Logger, users UserAuthenticator, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.createSession.New"

		log = log.With(slog.String("op", op))

		var req SessionRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, err := users.Authenticate(req.Email, req.Password)
		if err != nil {
			log.Error("failed to authenticate", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, service.ErrWrongPassword):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("wrong password"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to authenticate"))
			}
			return
		}

		token, err := tokens.NewToken(user.ID)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to authenticate"))
			return
		}

		log.Info("session created", slog.Int("user_id", user.ID))

		render.JSON(w, r, SessionResponse{
			Response: response.OK(),
			User:     user,
			Token:    token,
		})
	}
}
