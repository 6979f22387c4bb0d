package handler

import (
	"net/http"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

// RootHandler lists every available API route.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "Portfolio API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/login", "description": "Admin login"},
				{"method": "POST", "path": "/auth/logout", "description": "Admin logout"},
			},
			"codingProfiles": []map[string]string{
				{"method": "GET", "path": "/coding-profiles", "description": "List enabled coding profiles (?all=true for admin)"},
				{"method": "GET", "path": "/coding-profiles/contributions", "description": "Combined contribution calendar, streak and heatmap"},
				{"method": "GET", "path": "/coding-profiles/{id}", "description": "Get one coding profile"},
				{"method": "POST", "path": "/coding-profiles", "description": "Create or upsert a coding profile by platform"},
				{"method": "PUT", "path": "/coding-profiles/{id}", "description": "Manually edit a coding profile"},
				{"method": "DELETE", "path": "/coding-profiles/{id}", "description": "Delete a coding profile"},
				{"method": "POST", "path": "/coding-profiles/fetch-stats", "description": "One-shot stats fetch, nothing persisted"},
				{"method": "POST", "path": "/coding-profiles/{id}/daily-contribution", "description": "Set a single day entry by hand"},
				{"method": "POST", "path": "/coding-profiles/{id}/sync-all", "description": "Full stats + activity sync from the platform"},
			},
			"projects": []map[string]string{
				{"method": "GET", "path": "/projects", "description": "List projects (?featured=true)"},
				{"method": "GET", "path": "/projects/{id}", "description": "Get one project"},
				{"method": "POST", "path": "/projects", "description": "Create a project"},
				{"method": "PUT", "path": "/projects/{id}", "description": "Update a project"},
				{"method": "DELETE", "path": "/projects/{id}", "description": "Delete a project"},
			},
			"skills": []map[string]string{
				{"method": "GET", "path": "/skills", "description": "List skills (?category=...)"},
				{"method": "POST", "path": "/skills", "description": "Create a skill"},
				{"method": "PUT", "path": "/skills/{id}", "description": "Update a skill"},
				{"method": "DELETE", "path": "/skills/{id}", "description": "Delete a skill"},
			},
			"experiences": []map[string]string{
				{"method": "GET", "path": "/experiences", "description": "Experience timeline"},
				{"method": "POST", "path": "/experiences", "description": "Create an experience entry"},
				{"method": "PUT", "path": "/experiences/{id}", "description": "Update an experience entry"},
				{"method": "DELETE", "path": "/experiences/{id}", "description": "Delete an experience entry"},
			},
			"blog": []map[string]string{
				{"method": "GET", "path": "/blog", "description": "Published posts (?drafts=true for admin)"},
				{"method": "GET", "path": "/blog/{slug}", "description": "One post by slug"},
				{"method": "POST", "path": "/blog", "description": "Create a post"},
				{"method": "PUT", "path": "/blog/{id}", "description": "Update a post"},
				{"method": "DELETE", "path": "/blog/{id}", "description": "Delete a post"},
			},
			"contact": []map[string]string{
				{"method": "POST", "path": "/contact", "description": "Send a message"},
				{"method": "GET", "path": "/contact", "description": "Admin inbox"},
				{"method": "POST", "path": "/contact/{id}/read", "description": "Mark a message as read"},
				{"method": "POST", "path": "/newsletter/subscribe", "description": "Subscribe to the newsletter"},
			},
			"uploads": []map[string]string{
				{"method": "POST", "path": "/uploads/resume", "description": "Replace the resume PDF"},
				{"method": "POST", "path": "/uploads/image", "description": "Upload a profile or project image"},
			},
		},
	}

	utils.JSON(w, http.StatusOK, routes)
}
