package createMeetup

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
	"meetapp/internal/service"
)

type MeetupRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Location    string    `json:"location" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	FileID      int       `json:"file_id" validate:"required,gt=0"`
}

type MeetupResponse struct {
	response.Response
	Meetup models.Meetup `json:"meetup"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupCreator
type MeetupCreator interface {
	CreateMeetup(in service.CreateMeetupInput, userID int) (models.Meetup, error)
}

func New(log *slog.Logger, meetups MeetupCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.createMeetup.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		var req MeetupRequest

		err := render.DecodeJSON(r.Body, &req)
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

		meetup, err := meetups.CreateMeetup(service.CreateMeetupInput{
			Title:       req.Title,
			Description: req.Description,
			Location:    req.Location,
			Date:        req.Date,
			FileID:      req.FileID,
		}, userID)
		if err != nil {
			log.Error("failed to create meetup", sl.Err(err))

			switch {
			case errors.Is(err, service.ErrPastDate):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("past dates are not permitted"))
			case errors.Is(err, service.ErrFileNotFound):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("file does not exist"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create meetup"))
			}
			return
		}

		log.Info("meetup created", slog.Int("id", meetup.ID))

		responseOK(w, r, meetup)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meetup models.Meetup) {
	render.JSON(w, r, MeetupResponse{
		Response: response.OK(),
		Meetup:   meetup,
	})
}
