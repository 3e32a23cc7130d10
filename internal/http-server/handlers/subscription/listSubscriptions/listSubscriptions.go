package listSubscriptions

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
)

type SubscriptionsResponse struct {
	response.Response
	Subscriptions []models.Subscription `json:"subscriptions"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SubscriptionLister
type SubscriptionLister interface {
	ListSubscriptions(userID int) ([]models.Subscription, error)
}

func New(log *slog.Logger, subs SubscriptionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.subscription.listSubscriptions.New"

		log = log.With(slog.String("op", op))

		userID, ok := mwauth.UserID(r.Context())
		if !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		list, err := subs.ListSubscriptions(userID)
		if err != nil {
			log.Error("failed to list subscriptions", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list subscriptions"))
			return
		}

		log.Info("subscriptions retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, subs []models.Subscription) {
	render.JSON(w, r, SubscriptionsResponse{
		Response:      response.OK(),
		Subscriptions: subs,
	})
}
