package uploadFile

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"meetapp/internal/http-server/middleware/mwauth"
	"meetapp/internal/lib/api/response"
	"meetapp/internal/lib/logger/sl"
	"meetapp/internal/models"
)

// MaxUploadSize caps cover images at 5 MB.
const MaxUploadSize = 5 << 20

type FileResponse struct {
	response.Response
	File models.File `json:"file"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FileSaver
type FileSaver interface {
	SaveFile(name string, src io.Reader) (models.File, error)
}

func New(log *slog.Logger, files FileSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.file.uploadFile.New"

		log = log.With(slog.String("op", op))

		if _, ok := mwauth.UserID(r.Context()); !ok {
			log.Error("no user id in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authorized"))
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

		src, header, err := r.FormFile("file")
		if err != nil {
			log.Error("failed to read uploaded file", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read uploaded file"))
			return
		}
		defer src.Close()

		file, err := files.SaveFile(header.Filename, src)
		if err != nil {
			log.Error("failed to save file", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save file"))
			return
		}

		log.Info("file uploaded", slog.Int("id", file.ID), slog.String("name", file.Name))

		render.JSON(w, r, FileResponse{
			Response: response.OK(),
			File:     file,
		})
	}
}
