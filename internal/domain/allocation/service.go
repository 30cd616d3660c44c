package allocation

import (
	"errors"
	"time"

	"inpatient-chart/internal/domain/pagination"
)

var ErrInvalidInput = errors.New("invalid input")

// MaxTotal acota los listados de la matriz.
const MaxTotal = 100

type Service struct {
	capacity pagination.Capacity
	now      func() time.Time
}

func NewService(c pagination.Capacity) *Service {
	return &Service{
		capacity: c,
		now:      time.Now,
	}
}

// Capacity devuelve la tabla configurada con TotalRows reemplazado si total > 0.
func (s *Service) Capacity(total int) (pagination.Capacity, error) {
	c := s.capacity
	if total == 0 {
		return c, nil
	}
	if total < 2 || total > MaxTotal {
		return pagination.Capacity{}, ErrInvalidInput
	}
	c.TotalRows = total
	return c, nil
}

func (s *Service) Export(total int) (Document, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return Document{}, err
	}
	return Export(c, s.now()), nil
}

func (s *Service) Table(total int, filter Dominance, order SortOrder) (Table, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return Table{}, err
	}
	return Structured(c.TotalRows, filter, order, s.now()), nil
}

func (s *Service) Complementary(total int) (ComplementaryTables, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return ComplementaryTables{}, err
	}
	return Complementary(c.TotalRows, s.now()), nil
}

func (s *Service) Default(diet, treatment, total int) (DefaultAllocation, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return DefaultAllocation{}, err
	}
	return DefaultTable(diet, treatment, c, s.now()), nil
}

func (s *Service) Dashboard(diet, treatment, total int) (Dashboard, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return Dashboard{}, err
	}
	return BuildDashboard(diet, treatment, c, s.now()), nil
}

func (s *Service) Printable(diet, treatment, total int) (PrintableTable, error) {
	c, err := s.Capacity(total)
	if err != nil {
		return PrintableTable{}, err
	}
	return Printable(diet, treatment, c, s.now()), nil
}
