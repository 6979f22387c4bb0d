package handler

import (
	"net/http"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
