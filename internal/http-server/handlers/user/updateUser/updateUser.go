package updateUser

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/service"
	"meetapp/internal/storage"
)

type UpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	OldPassword *string `json:"old_password,omitempty"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UpdateResponse struct {
	response.Response
	User models.User `json:"user"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserUpdater
type UserUpdater interface {
	UpdateUser(id int, in service.UpdateUserInput) (models.User, error)
}

func New(log *slog.Logger, users UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.updateUser.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		var req UpdateRequest

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

		user, err := users.UpdateUser(userID, service.UpdateUserInput{
			Name:        req.Name,
			Email:       req.Email,
			OldPassword: req.OldPassword,
			Password:    req.Password,
		})
		if err != nil {
			log.Error("failed to update user", sl.Err(err))

			switch {
			case errors.Is(err, service.ErrWrongPassword):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("wrong password"))
			case errors.Is(err, storage.ErrEmailTaken):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email already taken"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update user"))
			}
			return
		}

		log.Info("user updated", slog.Int("id", user.ID))

		render.JSON(w, r, UpdateResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
