// Package jobs exposes the read surface over the ingestion pipeline:
// list, lookup by id, and category enumeration. There is no cache; every
// call re-fetches and re-normalizes the feed, so concurrent requests are
// fully independent.
package jobs

import (
	"context"
	"time"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
	"jobboard-engine/internal/feed"
	"jobboard-engine/internal/normalize"
)

// Source yields raw feed rows. *feed.Fetcher satisfies it; tests inject
// fixtures.
type Source interface {
	Rows(ctx context.Context) ([]feed.Row, error)
}

type Repo struct {
	src Source
	hub *events.Hub // optional
}

func NewRepo(src Source, hub *events.Hub) *Repo {
	return &Repo{src: src, hub: hub}
}

// Jobs runs one full fetch-decode-normalize pass and returns the retained
// listings in feed order.
func (r *Repo) Jobs(ctx context.Context) ([]domain.Job, error) {
	start := time.Now()

	rows, err := r.src.Rows(ctx)
	if err != nil {
		r.publish(events.FeedError(err))
		return nil, err
	}

	jobs := make([]domain.Job, 0, len(rows))
	for i, raw := range rows {
		n := normalize.NewRow(raw)
		if j, keep := normalize.BuildJob(n, i); keep {
			jobs = append(jobs, j)
		}
	}

	r.publish(events.FeedOK(len(rows), len(jobs), time.Since(start)))
	return jobs, nil
}

// JobByID returns the job with the given identifier, or nil when no listing
// matches. A missing id is not an error; callers render a not-found response.
func (r *Repo) JobByID(ctx context.Context, id string) (*domain.Job, error) {
	jobs, err := r.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, nil
}

// Categories returns every non-empty category in job order. Duplicates are
// preserved; display layers dedupe and sort.
func (r *Repo) Categories(ctx context.Context) ([]string, error) {
	jobs, err := r.Jobs(ctx)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, j := range jobs {
		if j.Category != "" {
			out = append(out, j.Category)
		}
	}
	return out, nil
}

func (r *Repo) publish(evt string) {
	if r.hub != nil {
		r.hub.Publish(evt)
	}
}
