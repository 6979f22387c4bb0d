package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/scanner"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

const projectColumns = `id, title, description, image_url, repo_url, live_url,
	tags, featured, sort_order, created_at, updated_at`

func GetProjects(w http.ResponseWriter, r *http.Request) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY sort_order, created_at DESC`
	if r.URL.Query().Get("featured") == "true" {
		query = `SELECT ` + projectColumns + ` FROM projects WHERE featured ORDER BY sort_order, created_at DESC`
	}

	rows, err := database.DB.Query(r.Context(), query)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query projects", err)
		return
	}
	defer rows.Close()

	projects := []model.Project{}
	for rows.Next() {
		p, err := scanner.ScanProject(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan project row", err)
			return
		}
		projects = append(projects, *p)
	}

	utils.Success(w, projects)
}

func GetProjectById(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+projectColumns+` FROM projects WHERE id=$1`, id)

	p, err := scanner.ScanProject(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "project not found")
		return
	}

	utils.Success(w, p)
}

func CreateProject(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if err := utils.DecodeJSON(r, &p); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if p.Title == "" {
		utils.Error(w, http.StatusBadRequest, "title is required")
		return
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO projects (id, title, description, image_url, repo_url, live_url, tags, featured, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		uuid.NewString(), p.Title, p.Description, p.ImageURL, p.RepoURL, p.LiveURL, p.Tags, p.Featured, p.SortOrder,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create project", err)
		return
	}

	utils.Created(w, p)
}

func UpdateProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p model.Project
	if err := utils.DecodeJSON(r, &p); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE projects
		SET title=$1, description=$2, image_url=$3, repo_url=$4, live_url=$5, tags=$6, featured=$7, sort_order=$8, updated_at=NOW()
		WHERE id=$9`,
		p.Title, p.Description, p.ImageURL, p.RepoURL, p.LiveURL, p.Tags, p.Featured, p.SortOrder, id,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update project", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "project not found")
		return
	}

	p.ID = id
	utils.Success(w, p)
}

func DeleteProject(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete project", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "project not found")
		return
	}

	utils.Message(w, "project deleted")
}
