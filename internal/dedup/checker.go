// Package dedup decides whether a candidate listing already exists in the
// store. The checker is read-only with respect to the store; the optional
// Redis seen-set is only a fast path in front of it.
package dedup

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"go-aujob-scraper/internal/models"
	"go-aujob-scraper/internal/normalize"
)

// Store is the persistence collaborator surface the checker reads.
type Store interface {
	ExistsByURL(ctx context.Context, source, url string) (bool, error)
	// ExistsByIdentity takes already-normalized title, company slug and
	// location name.
	ExistsByIdentity(ctx context.Context, title, companySlug, location string) (bool, error)
}

// Checker applies the two-key duplicate policy: exact external_url match
// first, then the composite (title, company, location) fingerprint that
// catches re-listed jobs under new URLs.
type Checker struct {
	store Store
	rdb   *redis.Client // nil disables the fast path
}

func NewChecker(store Store, rdb *redis.Client) *Checker {
	return &Checker{store: store, rdb: rdb}
}

func seenKey(source string) string {
	return "seen:" + source
}

// IsDuplicate reports whether the job already exists. The order is fixed:
// URL key, then composite fingerprint. Only a miss on both hands the record
// onward for insertion.
func (c *Checker) IsDuplicate(ctx context.Context, job *models.NormalizedJob) (bool, error) {
	if c.rdb != nil {
		seen, err := c.rdb.SIsMember(ctx, seenKey(job.ExternalSource), job.ExternalURL).Result()
		if err != nil {
			// cache trouble is never a reason to skip the real check
			log.Printf("⚠️ Redis seen-set lookup failed: %v", err)
		} else if seen {
			return true, nil
		}
	}

	exists, err := c.store.ExistsByURL(ctx, job.ExternalSource, job.ExternalURL)
	if err != nil {
		return false, err
	}
	if exists {
		c.MarkSeen(ctx, job)
		return true, nil
	}

	location := ""
	if job.Location != nil {
		location = job.Location.Name
	}
	exists, err = c.store.ExistsByIdentity(ctx,
		normalize.Identity(job.Title),
		job.Company.Slug,
		normalize.Identity(location),
	)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// MarkSeen records the URL in the seen-set after a successful insert or a
// confirmed duplicate. Cache errors are logged and swallowed; Postgres
// uniqueness remains the source of truth.
func (c *Checker) MarkSeen(ctx context.Context, job *models.NormalizedJob) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.SAdd(ctx, seenKey(job.ExternalSource), job.ExternalURL).Err(); err != nil {
		log.Printf("⚠️ Redis seen-set update failed: %v", err)
	}
}
