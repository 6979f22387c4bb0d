package handler

import (
	"net/http"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/services"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

const maxUploadSize = 10 << 20 // 10MB

// Uploads holds the cloudinary service wired at startup. Nil when
// cloudinary is not configured; upload routes then answer 503.
var Uploads *services.CloudinaryService

// UploadResume replaces the public resume PDF.
func UploadResume(w http.ResponseWriter, r *http.Request) {
	if Uploads == nil {
		utils.Error(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "file field is required", err)
		return
	}
	defer file.Close()

	url, err := Uploads.UploadResume(r.Context(), file)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "resume upload failed", err)
		return
	}

	utils.Success(w, map[string]string{"url": url})
}

// UploadImage uploads a project or profile image depending on the form's
// kind field.
func UploadImage(w http.ResponseWriter, r *http.Request) {
	if Uploads == nil {
		utils.Error(w, http.StatusServiceUnavailable, "uploads are not configured")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "file field is required", err)
		return
	}
	defer file.Close()

	var url string
	switch kind := r.FormValue("kind"); kind {
	case "profile":
		url, err = Uploads.UploadProfileImage(r.Context(), file)
	case "project":
		projectID := r.FormValue("projectId")
		if projectID == "" {
			utils.Error(w, http.StatusBadRequest, "projectId is required for project images")
			return
		}
		url, err = Uploads.UploadProjectImage(r.Context(), file, projectID)
	default:
		utils.Error(w, http.StatusBadRequest, "kind must be profile or project")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "image upload failed", err)
		return
	}

	utils.Success(w, map[string]string{"url": url})
}
