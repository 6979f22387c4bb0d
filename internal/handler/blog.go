package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/database"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/middleware"
	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/scanner"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

const blogColumns = `id, title, slug, summary, content, cover_url, tags, published, published_at, created_at, updated_at`

// GetBlogPosts lists posts. Drafts stay hidden from public callers.
func GetBlogPosts(w http.ResponseWriter, r *http.Request) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE published ORDER BY published_at DESC`
	if r.URL.Query().Get("drafts") == "true" && middleware.IsAdmin(r) {
		query = `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`
	}

	rows, err := database.DB.Query(r.Context(), query)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query blog posts", err)
		return
	}
	defer rows.Close()

	posts := []model.BlogPost{}
	for rows.Next() {
		b, err := scanner.ScanBlogPost(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan blog post row", err)
			return
		}
		posts = append(posts, *b)
	}

	utils.Success(w, posts)
}

// GetBlogPostBySlug serves one post by its URL slug.
func GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	row := database.DB.QueryRow(r.Context(),
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug=$1`, slug)

	b, err := scanner.ScanBlogPost(row)
	if err != nil {
		utils.Error(w, http.StatusNotFound, "blog post not found")
		return
	}
	if !b.Published && !middleware.IsAdmin(r) {
		utils.Error(w, http.StatusNotFound, "blog post not found")
		return
	}

	utils.Success(w, b)
}

func CreateBlogPost(w http.ResponseWriter, r *http.Request) {
	var b model.BlogPost
	if err := utils.DecodeJSON(r, &b); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if b.Title == "" || b.Content == "" {
		utils.Error(w, http.StatusBadRequest, "title and content are required")
		return
	}
	if b.Slug == "" {
		b.Slug = slugify(b.Title)
	}
	if b.Published && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}

	err := database.DB.QueryRow(r.Context(), `
		INSERT INTO blog_posts (id, title, slug, summary, content, cover_url, tags, published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		uuid.NewString(), b.Title, b.Slug, b.Summary, b.Content, b.CoverURL, b.Tags, b.Published, b.PublishedAt,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create blog post", err)
		return
	}

	utils.Created(w, b)
}

func UpdateBlogPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var b model.BlogPost
	if err := utils.DecodeJSON(r, &b); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if b.Published && b.PublishedAt == nil {
		now := time.Now()
		b.PublishedAt = &now
	}

	tag, err := database.DB.Exec(r.Context(), `
		UPDATE blog_posts
		SET title=$1, slug=$2, summary=$3, content=$4, cover_url=$5, tags=$6, published=$7, published_at=$8, updated_at=NOW()
		WHERE id=$9`,
		b.Title, b.Slug, b.Summary, b.Content, b.CoverURL, b.Tags, b.Published, b.PublishedAt, id,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update blog post", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "blog post not found")
		return
	}

	b.ID = id
	utils.Success(w, b)
}

func DeleteBlogPost(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tag, err := database.DB.Exec(r.Context(), `DELETE FROM blog_posts WHERE id=$1`, id)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete blog post", err)
		return
	}
	if tag.RowsAffected() == 0 {
		utils.Error(w, http.StatusNotFound, "blog post not found")
		return
	}

	utils.Message(w, "blog post deleted")
}

// slugify turns a title into a URL slug: lowercase, dashes, alphanumerics.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
