package updateMeetup

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/service"
	"meetapp/internal/storage"
)

type MeetupRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string    `json:"description,omitempty" validate:"omitempty,min=1"`
	Location    *string    `json:"location,omitempty" validate:"omitempty,min=1"`
	Date        *time.Time `json:"date,omitempty"`
	FileID      *int       `json:"file_id,omitempty" validate:"omitempty,gt=0"`
}

type MeetupResponse struct {
	response.Response
	Meetup models.Meetup `json:"meetup"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupUpdater
type MeetupUpdater interface {
	UpdateMeetup(id int, in service.UpdateMeetupInput, userID int) (models.Meetup, error)
}

func New(log *slog.Logger, meetups MeetupUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.updateMeetup.New"

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

		var req MeetupRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		meetup, err := meetups.UpdateMeetup(meetupID, service.UpdateMeetupInput{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Date:        req.Date,
			FileID:      req.FileID,
		}, userID)
		if err != nil {
			log.Error("failed to update meetup", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMeetupNotFound):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup not found"))
			case errors.Is(err, service.ErrNotOwner):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup does not belong to the user"))
			case errors.Is(err, service.ErrPastDate):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("past dates are not permitted"))
			case errors.Is(err, service.ErrFileNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file does not exist"))
			case errors.Is(err, storage.ErrScheduleConflict):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("a subscriber already has a meetup at this time"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to update meetup"))
			}
			return
		}

		log.Info("meetup updated")

		responseOK(w, r, meetup)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meetup models.Meetup) {
	render.JSON(w, r, MeetupResponse{
		Response: response.OK(),
		Meetup:   meetup,
	})
}
