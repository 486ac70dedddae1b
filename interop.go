package guardmap

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/maps"
)

// Interop presents the facade through the gods container interfaces so
// generic code written against maps.Map accepts it in place of an ordinary
// ordered map, without ever seeing the raw container.
//
// The gods surface has no error channel, so blocked mutations and absent keys
// degrade to their silent forms here regardless of the error-reporting flags.
// Keys and values of the wrong dynamic type are treated as absent on read and
// ignored on write.
type Interop[K comparable, V any] struct {
	m *Map[K, V]
}

var (
	_ maps.Map             = (*Interop[string, any])(nil)
	_ containers.Container = (*Interop[string, any])(nil)
)

// Interop returns the gods-compatible view of m. Policy enforcement is
// unchanged underneath.
func (m *Map[K, V]) Interop() *Interop[K, V] {
	return &Interop[K, V]{m: m}
}

func (g *Interop[K, V]) Put(key interface{}, value interface{}) {
	k, ok := key.(K)
	if !ok {
		return
	}
	v, ok := value.(V)
	if !ok {
		return
	}
	_, _ = g.m.Set(k, v)
}

func (g *Interop[K, V]) Get(key interface{}) (interface{}, bool) {
	k, ok := key.(K)
	if !ok {
		return nil, false
	}
	value, found, err := g.m.Get(k)
	if err != nil || !found {
		return nil, false
	}
	return value, true
}

func (g *Interop[K, V]) Remove(key interface{}) {
	k, ok := key.(K)
	if !ok {
		return
	}
	_, _ = g.m.Delete(k)
}

func (g *Interop[K, V]) Keys() []interface{} {
	keys := make([]interface{}, 0, g.m.Len())
	for key := range g.m.Keys() {
		keys = append(keys, key)
	}
	return keys
}

func (g *Interop[K, V]) Values() []interface{} {
	values := make([]interface{}, 0, g.m.Len())
	for value := range g.m.Values() {
		values = append(values, value)
	}
	return values
}

func (g *Interop[K, V]) Size() int {
	return g.m.Len()
}

func (g *Interop[K, V]) Empty() bool {
	return g.m.Len() == 0
}

func (g *Interop[K, V]) Clear() {
	_, _ = g.m.Clear()
}

// String follows the gods container convention.
func (g *Interop[K, V]) String() string {
	str := "GuardMap\nmap["
	for key, value := range g.m.Entries() {
		str += fmt.Sprintf("%v:%v ", key, value)
	}
	return strings.TrimRight(str, " ") + "]"
}
