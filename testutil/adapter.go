package testutil

import "github.com/comalice/guardmap"

// Surface provides a common interface over the typed facade and the
// property-style view. This allows running the same scenario suite on both
// surfaces, string keys and any values.
type Surface interface {
	Get(key string) (value any, found bool, err error)
	Set(key string, value any) (applied bool, err error)
	Delete(key string) (deleted bool, err error)
	Has(key string) bool
	Len() int
	Clear() (applied bool, err error)
}

// TypedSurface wraps the method-style facade.
type TypedSurface struct {
	M *guardmap.Map[string, any]
}

// NewTypedSurface creates an adapter for the typed facade.
func NewTypedSurface(m *guardmap.Map[string, any]) *TypedSurface {
	return &TypedSurface{M: m}
}

func (s *TypedSurface) Get(key string) (any, bool, error) {
	return s.M.Get(key)
}

func (s *TypedSurface) Set(key string, value any) (bool, error) {
	return s.M.Set(key, value)
}

func (s *TypedSurface) Delete(key string) (bool, error) {
	return s.M.Delete(key)
}

func (s *TypedSurface) Has(key string) bool {
	return s.M.Has(key)
}

func (s *TypedSurface) Len() int {
	return s.M.Len()
}

func (s *TypedSurface) Clear() (bool, error) {
	return s.M.Clear()
}

// ViewSurface wraps the property-style view. The view reports absence with a
// nil value, so scenarios run through this adapter must not store nil values.
type ViewSurface struct {
	V *guardmap.View[any]
}

// NewViewSurface creates an adapter for the property-style view of m.
func NewViewSurface(m *guardmap.Map[string, any]) *ViewSurface {
	return &ViewSurface{V: guardmap.Reflect(m)}
}

func (s *ViewSurface) Get(key string) (any, bool, error) {
	value, err := s.V.Get(key)
	if err != nil {
		return nil, false, err
	}
	if value == nil {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *ViewSurface) Set(key string, value any) (bool, error) {
	return s.V.Set(key, value)
}

func (s *ViewSurface) Delete(key string) (bool, error) {
	return s.V.Delete(key)
}

func (s *ViewSurface) Has(key string) bool {
	return s.V.Has(key)
}

func (s *ViewSurface) Len() int {
	return s.V.Len()
}

func (s *ViewSurface) Clear() (bool, error) {
	return s.V.Clear()
}
