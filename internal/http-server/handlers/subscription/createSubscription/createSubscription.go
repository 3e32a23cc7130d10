package createSubscription

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

type SubscriptionRequest struct {
	MeetupID int `json:"meetup_id" validate:"required,gt=0"`
}

type SubscriptionResponse struct {
	response.Response
	Subscription models.Subscription `json:"subscription"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionCreator
type SubscriptionCreator interface {
	Subscribe(meetupID, userID int) (models.Subscription, error)
}

func New(log *slog.Logger, subs SubscriptionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscription.createSubscription.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		var req SubscriptionRequest

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

		sub, err := subs.Subscribe(req.MeetupID, userID)
		if err != nil {
			log.Error("failed to subscribe", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrMeetupNotFound):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup not found"))
			case errors.Is(err, service.ErrOwnSubscription):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("organizers cannot subscribe to their own meetup"))
			case errors.Is(err, service.ErrPastMeetup):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("meetup has already happened"))
			case errors.Is(err, storage.ErrDuplicateSubscription):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user already subscribed to this meetup"))
			case errors.Is(err, storage.ErrScheduleConflict):
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user already has a meetup at this time"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to subscribe"))
			}
			return
		}

		log.Info("subscription created", slog.Int("id", sub.ID))

		responseOK(w, r, sub)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, sub models.Subscription) {
	render.JSON(w, r, SubscriptionResponse{
		Response:     response.OK(),
		Subscription: sub,
	})
}
