package charts

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("chart not found")

// Repository guarda las sesiones de edición. Update es atómico por planilla:
// fn recibe una copia y, si no devuelve error, esa copia reemplaza a la guardada.
type Repository interface {
	Create(ctx context.Context, c Chart) error
	Get(ctx context.Context, id string) (Chart, error)
	Update(ctx context.Context, id string, fn func(c *Chart) error) (Chart, error)
	Delete(ctx context.Context, id string) error

	// DeleteIdle borra las sesiones sin cambios desde cutoff y devuelve cuántas borró.
	DeleteIdle(ctx context.Context, cutoff time.Time) (int, error)
}
