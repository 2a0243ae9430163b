// Package database implements the persistence collaborator contract over
// PostgreSQL. The engine only ever calls ExistsByURL, ExistsByIdentity and
// Upsert; schema migrations live outside this repository.
package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-aujob-scraper/internal/models"
)

type Repository struct {
	db *pgxpool.Pool
}

// Connect opens a pgx pool and verifies connectivity.
func Connect(ctx context.Context, connString string) (*Repository, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour
	// connection poolers in transaction mode choke on prepared statements
	cfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// ExistsByURL reports whether a listing with this URL was already persisted
// for the source.
func (r *Repository) ExistsByURL(ctx context.Context, source, url string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM job_postings
			WHERE external_source = $1 AND external_url = $2
		)`, source, url).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("url existence check: %w", err)
	}
	return exists, nil
}

// ExistsByIdentity matches the composite (title, company, location)
// fingerprint. Inputs arrive normalized: lowercase collapsed title and
// location name, company slug.
func (r *Repository) ExistsByIdentity(ctx context.Context, title, companySlug, location string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1
			FROM job_postings j
			JOIN companies c ON j.company_id = c.id
			LEFT JOIN locations l ON j.location_id = l.id
			WHERE lower(j.title) = $1
			  AND c.slug = $2
			  AND COALESCE(lower(l.name), '') = $3
		)`, title, companySlug, location).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("identity existence check: %w", err)
	}
	return exists, nil
}

// Upsert inserts a normalized job with its company and location references.
// The unique constraint on external_url is the second line of defense:
// a conflicting insert reports duplicate instead of failing.
func (r *Repository) Upsert(ctx context.Context, job *models.NormalizedJob) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback(ctx)

	companyID, err := r.getOrCreateCompany(ctx, tx, job.Company)
	if err != nil {
		return false, err
	}

	var locationID *int64
	if job.Location != nil && job.Location.Name != "" {
		id, err := r.getOrCreateLocation(ctx, tx, job.Location)
		if err != nil {
			return false, err
		}
		locationID = &id
	}

	tag, err := tx.Exec(ctx,
		`INSERT INTO job_postings (
			external_source, external_url, external_id,
			title, description, tags,
			job_category, job_type, work_mode, experience_level,
			salary_min, salary_max, salary_currency, salary_period, salary_raw_text,
			date_posted, posted_ago, company_id, location_id, status
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20)
		ON CONFLICT (external_url) DO NOTHING`,
		job.ExternalSource, job.ExternalURL, job.ExternalID,
		job.Title, job.Description, strings.Join(job.Tags, ", "),
		string(job.Category), string(job.JobType), string(job.WorkMode), job.ExperienceLevel,
		job.SalaryMin, job.SalaryMax, job.SalaryCurrency, string(job.SalaryPeriod), job.SalaryRawText,
		job.DatePosted, job.PostedAgoText, companyID, locationID, string(job.Status),
	)
	if err != nil {
		return false, fmt.Errorf("insert job posting: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("commit upsert: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) getOrCreateCompany(ctx context.Context, tx pgx.Tx, company models.CompanyRef) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO companies (name, slug)
		 VALUES ($1, $2)
		 ON CONFLICT (slug) DO UPDATE SET name = companies.name
		 RETURNING id`,
		company.Name, company.Slug).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get or create company %q: %w", company.Name, err)
	}
	return id, nil
}

func (r *Repository) getOrCreateLocation(ctx context.Context, tx pgx.Tx, loc *models.LocationRef) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx,
		`INSERT INTO locations (name, city, state, country)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO UPDATE SET name = locations.name
		 RETURNING id`,
		loc.Name, loc.City, loc.State, loc.Country).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get or create location %q: %w", loc.Name, err)
	}
	return id, nil
}
