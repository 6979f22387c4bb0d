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

const skillColumns = `id, name, category, level, icon_name, sort_order, created_at, updated_at`

func GetSkills(w http.ResponseWriter, r *http.Request) {
	query := `SELECT ` + skillColumns + ` FROM skills ORDER BY category, sort_order`
	args := []interface{}{}
	if category := r.URL.Query().Get("category"); category != "" {
		query = `SELECT ` + skillColumns + ` FROM skills WHERE category=$1 ORDER BY sort_order`
		args = append(args, category)
	}

	rows, err := database.DB.Query(r.Context(), query, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query skills", err)
		return
	}
	defer rows.Close()

	skills := []model.Skill{}
	for rows.Next() {
		s, err := scanner.ScanSkill(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan skill row", err)
			return
		}
		skills = append(skills, *s)
	}

	utils.Success(w, skills)
}

func CreateSkill(w http.ResponseWriter, r *http.Request) {
	var s model.Skill
	if err := utils.DecodeJSON(r, &s); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if s.Name == "" || s.Category == "" {
		utils.Error(w, http.StatusBadRequest, "name and category are required")
		return
	}
	if s.Level < 1 || s.Level > 5 {
		utils.Error(w, http.StatusBadRequest, "level must be between 1 and 5")
		return
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO skills (id, name, category, level, icon_name, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		uuid.NewString(), s.Name, s.Category, s.Level, s.IconName, s.SortOrder,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create skill", err)
		return
	}

	utils.Created(w, s)
}

func UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var s model.Skill
	if err := utils.DecodeJSON(r, &s); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE skills
		SET name=$1, category=$2, level=$3, icon_name=$4, sort_order=$5, updated_at=NOW()
		WHERE id=$6`,
		s.Name, s.Category, s.Level, s.IconName, s.SortOrder, id,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update skill", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "skill not found")
		return
	}

	s.ID = id
	utils.Success(w, s)
}

func DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM skills WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete skill", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "skill not found")
		return
	}

	utils.Message(w, "skill deleted")
}
