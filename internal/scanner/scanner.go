package scanner

import (
	"database/sql"

	model "github.com/harilal-sah-kanu/Portfolio-sub000/internal/models"
	"github.com/harilal-sah-kanu/Portfolio-sub000/internal/utils"
)

// rowScanner matches both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanCodingProfile scans one coding_profiles row. The stats and
// daily_contributions jsonb columns decode straight into their Go shapes.
func ScanCodingProfile(s rowScanner) (*model.CodingProfile, error) {
	var p model.CodingProfile
	var profileURL sql.NullString

	err := s.Scan(
		&p.ID, &p.Platform, &p.Username, &profileURL,
		&p.Stats, &p.DailyContributions,
		&p.Enabled, &p.LastUpdated, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ProfileURL = utils.NullStringToString(profileURL)
	if p.Stats == nil {
		p.Stats = model.StatMap{}
	}
	if p.DailyContributions == nil {
		p.DailyContributions = []model.ContributionDay{}
	}
	return &p, nil
}

// ScanProject scans one projects row.
func ScanProject(s rowScanner) (*model.Project, error) {
	var p model.Project
	var imageURL, repoURL, liveURL sql.NullString

	err := s.Scan(
		&p.ID, &p.Title, &p.Description, &imageURL, &repoURL, &liveURL,
		&p.Tags, &p.Featured, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.ImageURL = utils.NullStringToString(imageURL)
	p.RepoURL = utils.NullStringToString(repoURL)
	p.LiveURL = utils.NullStringToString(liveURL)
	return &p, nil
}

// ScanSkill scans one skills row.
func ScanSkill(s rowScanner) (*model.Skill, error) {
	var sk model.Skill
	var iconName sql.NullString

	err := s.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &iconName,
		&sk.SortOrder, &sk.CreatedAt, &sk.UpdatedAt)
	if err != nil {
		return nil, err
	}

	sk.IconName = utils.NullStringToString(iconName)
	return &sk, nil
}

// ScanExperience scans one experiences row.
func ScanExperience(s rowScanner) (*model.Experience, error) {
	var e model.Experience
	var description, location sql.NullString
	var endDate sql.NullTime

	err := s.Scan(&e.ID, &e.Company, &e.Role, &description,
		&e.StartDate, &endDate, &location, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}

	e.Description = utils.NullStringToString(description)
	e.Location = utils.NullStringToString(location)
	e.EndDate = utils.NullTimeToPointer(endDate)
	return &e, nil
}

// ScanBlogPost scans one blog_posts row.
func ScanBlogPost(s rowScanner) (*model.BlogPost, error) {
	var b model.BlogPost
	var summary, coverURL sql.NullString
	var publishedAt sql.NullTime

	err := s.Scan(&b.ID, &b.Title, &b.Slug, &summary, &b.Content, &coverURL,
		&b.Tags, &b.Published, &publishedAt, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	b.Summary = utils.NullStringToString(summary)
	b.CoverURL = utils.NullStringToString(coverURL)
	b.PublishedAt = utils.NullTimeToPointer(publishedAt)
	return &b, nil
}
