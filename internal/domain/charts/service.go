package charts

import (
	"context"
	"errors"
	"strings"
	"time"

	"inpatient-chart/internal/domain/admission"
	"inpatient-chart/internal/domain/pagination"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Publisher entrega eventos a los clientes que siguen una planilla en vivo.
type Publisher interface {
	Publish(topic string, v any)
}

// Event es lo que recibe un cliente suscripto a /charts/{id}/live.
type Event struct {
	Type    string      `json:"type"` // layout | reset
	ChartID string      `json:"chart_id"`
	Layout  *LayoutView `json:"layout,omitempty"`
}

const (
	EventLayout = "layout"
	EventReset  = "reset"
)

type Config struct {
	Capacity    pagination.Capacity
	MaxStayDays int // 0 = sin límite
}

type Service struct {
	repo Repository
	cfg  Config
	pub  Publisher
	now  func() time.Time
}

// NewService: pub puede ser nil (sin vista en vivo).
func NewService(repo Repository, cfg Config, pub Publisher) *Service {
	return &Service{
		repo: repo,
		cfg:  cfg,
		pub:  pub,
		now:  time.Now,
	}
}

func (s *Service) Capacity() pagination.Capacity { return s.cfg.Capacity }

func (s *Service) Create(ctx context.Context) (Chart, error) {
	c := NewChart(uuid.NewString(), s.now())
	if err := s.repo.Create(ctx, c); err != nil {
		return Chart{}, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (Chart, error) {
	if strings.TrimSpace(id) == "" {
		return Chart{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// Reset descarta la sesión (equivale a recargar la página).
func (s *Service) Reset(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(Event{Type: EventReset, ChartID: id})
	return nil
}

// HeaderPatch: nil = no tocar.
type HeaderPatch struct {
	FileNo        *string
	PetName       *string
	OwnerName     *string
	Doctor        *string
	AssistantName *string
	CageNo        *string
	Diagnosis     *string
	AdmissionDate *string
	DischargeDate *string
	Weight        *string
	Stage         *admission.Stage
}

func (p HeaderPatch) apply(h admission.Header) admission.Header {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&h.FileNo, p.FileNo)
	set(&h.PetName, p.PetName)
	set(&h.OwnerName, p.OwnerName)
	set(&h.Doctor, p.Doctor)
	set(&h.AssistantName, p.AssistantName)
	set(&h.CageNo, p.CageNo)
	set(&h.Diagnosis, p.Diagnosis)
	set(&h.AdmissionDate, p.AdmissionDate)
	set(&h.DischargeDate, p.DischargeDate)
	set(&h.Weight, p.Weight)
	if p.Stage != nil {
		h.Stage = *p.Stage
	}
	return h
}

// UpdateHeader aplica los formatters del formulario y valida el rango de internación.
func (s *Service) UpdateHeader(ctx context.Context, id string, p HeaderPatch) (Chart, error) {
	if p.Stage != nil {
		if _, ok := admission.ParseStage(string(*p.Stage)); !ok {
			return Chart{}, ErrInvalidInput
		}
	}

	c, err := s.repo.Update(ctx, id, func(c *Chart) error {
		h := p.apply(c.Header).Normalize()
		if err := admission.ValidateDates(h, s.cfg.MaxStayDays); err != nil {
			return err
		}
		c.Header = h
		c.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Chart{}, err
	}

	s.publishLayout(c)
	return c, nil
}

// AddRow agrega una fila con la plantilla de la tabla; label/dose/type opcionales.
func (s *Service) AddRow(ctx context.Context, id string, t Table, p RowPatch) (Chart, Row, error) {
	var added Row
	c, err := s.repo.Update(ctx, id, func(c *Chart) error {
		rows, r, next := AddRow(c.Rows(t), c.NextRowID, DefaultRow(t))
		rows, r, err := UpdateRow(rows, r.ID, p)
		if err != nil {
			return err
		}
		c.SetRows(t, rows)
		c.NextRowID = next
		c.UpdatedAt = s.now()
		added = r
		return nil
	})
	if err != nil {
		return Chart{}, Row{}, err
	}

	s.publishLayout(c)
	return c, added, nil
}

func (s *Service) UpdateRow(ctx context.Context, id string, t Table, rowID int64, p RowPatch) (Chart, Row, error) {
	var updated Row
	c, err := s.repo.Update(ctx, id, func(c *Chart) error {
		rows, r, err := UpdateRow(c.Rows(t), rowID, p)
		if err != nil {
			return err
		}
		c.SetRows(t, rows)
		c.UpdatedAt = s.now()
		updated = r
		return nil
	})
	if err != nil {
		return Chart{}, Row{}, err
	}

	s.publishLayout(c)
	return c, updated, nil
}

// DeleteRow rechaza borrar la última fila de una tabla con ErrLastRow.
func (s *Service) DeleteRow(ctx context.Context, id string, t Table, rowID int64) (Chart, error) {
	c, err := s.repo.Update(ctx, id, func(c *Chart) error {
		rows, err := DeleteRow(c.Rows(t), rowID)
		if err != nil {
			return err
		}
		c.SetRows(t, rows)
		c.UpdatedAt = s.now()
		return nil
	})
	if err != nil {
		return Chart{}, err
	}

	s.publishLayout(c)
	return c, nil
}

func (s *Service) Layout(ctx context.Context, id string, mode pagination.RenderMode) (LayoutView, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return LayoutView{}, err
	}
	return s.LayoutOf(c, mode), nil
}

// LayoutOf pagina una planilla sin pasar por el repositorio.
func (s *Service) LayoutOf(c Chart, mode pagination.RenderMode) LayoutView {
	v := BuildLayout(c.Header, c.Diet, c.Treatment, s.cfg.Capacity, mode)
	v.ChartID = c.ID
	return v
}

// SweepIdle borra las sesiones sin actividad durante ttl.
func (s *Service) SweepIdle(ctx context.Context, ttl time.Duration) (int, error) {
	if ttl <= 0 {
		return 0, nil
	}
	return s.repo.DeleteIdle(ctx, s.now().Add(-ttl))
}

func (s *Service) publishLayout(c Chart) {
	if s.pub == nil {
		return
	}
	// en vivo solo se edita en pantalla
	v := s.LayoutOf(c, pagination.ModeScreen)
	s.publish(Event{Type: EventLayout, ChartID: c.ID, Layout: &v})
}

func (s *Service) publish(e Event) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(e.ChartID, e)
}
