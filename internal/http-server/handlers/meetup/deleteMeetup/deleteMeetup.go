package deleteMeetup

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/service"
	"meetapp/internal/storage"
)

type DeleteResponse struct {
	response.Response
	Result string `json:"result"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupDeleter
type MeetupDeleter interface {
	DeleteMeetup(id int, userID int) error
}

func New(log *slog.Logger, meetups MeetupDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.deleteMeetup.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		meetupID, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			log.Error("invalid meetup id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid meetup id format"))
			return
		}

		log = log.With(slog.Int("meetup_id", meetupID))

		err = meetups.DeleteMeetup(meetupID, userID)
		if err != nil {
			log.Error("failed to delete meetup", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMeetupNotFound):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup not found"))
			case errors.Is(err, service.ErrNotOwner):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup does not belong to the user"))
			case errors.Is(err, service.ErrTooLate):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetups can only be cancelled one hour in advance"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to delete meetup"))
			}
			return
		}

		log.Info("meetup deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Result:   "ok",
		})
	}
}
