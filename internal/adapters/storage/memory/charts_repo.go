package memory

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"inpatient-chart/internal/domain/charts"
)

// chartRepo guarda las sesiones de edición solo en memoria: reiniciar el proceso las descarta.
type chartRepo struct {
	mu   sync.RWMutex
	byID map[string]charts.Chart
}

func NewChartRepo() charts.Repository {
	return &chartRepo{
		byID: make(map[string]charts.Chart),
	}
}

func (r *chartRepo) Create(ctx context.Context, c charts.Chart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("chart id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("chart already exists")
	}
	r.byID[c.ID] = c.Clone()
	return nil
}

func (r *chartRepo) Get(ctx context.Context, id string) (charts.Chart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return charts.Chart{}, charts.ErrNotFound
	}
	return c.Clone(), nil
}

func (r *chartRepo) Update(ctx context.Context, id string, fn func(c *charts.Chart) error) (charts.Chart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[id]
	if !ok {
		return charts.Chart{}, charts.ErrNotFound
	}

	next := cur.Clone()
	if err := fn(&next); err != nil {
		return charts.Chart{}, err
	}
	next.ID = cur.ID // el id no se toca

	r.byID[id] = next
	return next.Clone(), nil
}

func (r *chartRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return charts.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *chartRepo) DeleteIdle(ctx context.Context, cutoff time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, c := range r.byID {
		if c.UpdatedAt.Before(cutoff) {
			delete(r.byID, id)
			n++
		}
	}
	return n, nil
}
