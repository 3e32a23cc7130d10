package listMeetups

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/render"

	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
)

type MeetupsResponse struct {
	response.Response
	Meetups []models.Meetup `json:"meetups"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MeetupLister
type MeetupLister interface {
	ListMeetups(date *time.Time, page int) ([]models.Meetup, error)
}

func New(log *slog.Logger, meetups MeetupLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.meetup.listMeetups.New"

		log = log.With(slog.String("op", op))

		var date *time.Time
		if dateStr := r.URL.Query().Get("date"); dateStr != "" {
			parsed, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				log.Error("invalid date format", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid date format, expected YYYY-MM-DD"))
				return
			}
			date = &parsed
		}

		page := 1
		if pageStr := r.URL.Query().Get("page"); pageStr != "" {
			parsed, err := strconv.Atoi(pageStr)
			if err != nil || parsed < 1 {
				log.Error("invalid page number")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page number"))
				return
			}
			page = parsed
		}

		list, err := meetups.ListMeetups(date, page)
		if err != nil {
			log.Error("failed to list meetups", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list meetups"))
			return
		}

		log.Info("meetups retrieved", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, meetups []models.Meetup) {
	render.JSON(w, r, MeetupsResponse{
		Response: response.OK(),
		Meetups:  meetups,
	})
}
