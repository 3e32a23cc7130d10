package listUsers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	ListUsers() ([]models.User, error)
}

func New(log *slog.Logger, users UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.listUsers.New"

		log = log.With(slog.String("op", op))

		list, err := users.ListUsers()
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		log.Info("users retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    list,
		})
	}
}
