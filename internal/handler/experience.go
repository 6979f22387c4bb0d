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

const experienceColumns = `id, company, role, description, start_date, end_date, location, created_at, updated_at`

func GetExperiences(w http.ResponseWriter, r *http.Request) {
	rows, err := database.DB.Query(r.Context(),
		`SELECT `+experienceColumns+` FROM experiences ORDER BY start_date DESC`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query experiences", err)
		return
	}
	defer rows.Close()

	experiences := []model.Experience{}
	for rows.Next() {
		e, err := scanner.ScanExperience(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan experience row", err)
			return
		}
		experiences = append(experiences, *e)
	}

	utils.Success(w, experiences)
}

func CreateExperience(w http.ResponseWriter, r *http.Request) {
	var e model.Experience
	if err := utils.DecodeJSON(r, &e); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if e.Company == "" || e.Role == "" {
		utils.Error(w, http.StatusBadRequest, "company and role are required")
		return
	}
	if e.StartDate.IsZero() {
		utils.Error(w, http.StatusBadRequest, "startDate is required")
		return
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		utils.Error(w, http.StatusBadRequest, "endDate cannot be before startDate")
		return
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO experiences (id, company, role, description, start_date, end_date, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		uuid.NewString(), e.Company, e.Role, e.Description, e.StartDate, e.EndDate, e.Location,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create experience", err)
		return
	}

	utils.Created(w, e)
}

func UpdateExperience(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var e model.Experience
	if err := utils.DecodeJSON(r, &e); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE experiences
		SET company=$1, role=$2, description=$3, start_date=$4, end_date=$5, location=$6, updated_at=NOW()
		WHERE id=$7`,
		e.Company, e.Role, e.Description, e.StartDate, e.EndDate, e.Location, id,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update experience", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "experience not found")
		return
	}

	e.ID = id
	utils.Success(w, e)
}

func DeleteExperience(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM experiences WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete experience", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "experience not found")
		return
	}

	utils.Message(w, "experience deleted")
}
