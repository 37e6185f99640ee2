package widget

import (
	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/engine/frame"
	"github.com/npillmayer/boxflow/engine/style"
)

// Entry is what the store knows about a widget in the current frame.
type Entry struct {
	Box      frame.Box
	Style    style.Descriptor
	Recorded bool // false until the widget's geometry has been resolved
}

// arena holds the widgets of one type. Entries are reset every frame,
// interaction states survive frames.
type arena struct {
	entries []Entry
	states  []style.State
}

// Store holds the geometry and style of every widget of a frame, one arena
// per widget type. The zero value is not usable, create stores with
// NewStore.
type Store struct {
	arenas map[Type]*arena
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{arenas: make(map[Type]*arena)}
}

func (s *Store) arena(t Type) *arena {
	a, ok := s.arenas[t]
	if !ok {
		a = &arena{}
		s.arenas[t] = a
	}
	return a
}

// Allocate reserves the next id for a widget of type t.
//
// Allocating more than MaxIndex+1 widgets of one type within a frame is a
// contract violation and panics with an error of kind core.EOVERFLOW.
func (s *Store) Allocate(t Type) ID {
	if t < 0 || t >= TotalTypes {
		panic(core.Error(core.EINVALID, "cannot allocate id for widget type %v", t))
	}
	a := s.arena(t)
	index := len(a.entries)
	if index > MaxIndex {
		panic(core.Error(core.EOVERFLOW, "more than %d widgets of type %v", MaxIndex+1, t))
	}
	a.entries = append(a.entries, Entry{})
	if index >= len(a.states) {
		a.states = append(a.states, style.StateDefault)
	}
	id := MakeID(t, index)
	tracer().Debugf("allocated widget %v", id)
	return id
}

// entry locates an allocated widget. Unknown ids panic with an error of kind
// core.EMISSING.
func (s *Store) entry(id ID) (*arena, int) {
	a, ok := s.arenas[id.Type()]
	if !ok || id.Index() >= len(a.entries) {
		panic(core.Error(core.EMISSING, "no widget with id %v", id))
	}
	return a, id.Index()
}

// Record stores the resolved box and style of a widget.
func (s *Store) Record(id ID, box frame.Box, st *style.Descriptor) {
	a, i := s.entry(id)
	a.entries[i].Box = box
	if st != nil {
		a.entries[i].Style = *st
	}
	a.entries[i].Recorded = true
}

// Geometry returns the margin box of a widget.
func (s *Store) Geometry(id ID) dimen.Rect {
	a, i := s.entry(id)
	return a.entries[i].Box.Margin
}

// Box returns all rectangles of a widget.
func (s *Store) Box(id ID) frame.Box {
	a, i := s.entry(id)
	return a.entries[i].Box
}

// SetBox replaces the rectangles of a widget, e.g. after alignment moved it.
func (s *Store) SetBox(id ID, box frame.Box) {
	a, i := s.entry(id)
	a.entries[i].Box = box
}

// Style returns the resolved style of a widget. The descriptor is owned by
// the store and valid until the next Reset.
func (s *Store) Style(id ID) *style.Descriptor {
	a, i := s.entry(id)
	return &a.entries[i].Style
}

// State returns the interaction state of a widget.
func (s *Store) State(id ID) style.State {
	a, i := s.entry(id)
	return a.states[i]
}

// SetState sets the interaction state of a widget. States are kept across
// frames for widgets allocated in the same order.
func (s *Store) SetState(id ID, st style.State) {
	a, i := s.entry(id)
	a.states[i] = st
}

// Count returns the number of widgets of type t allocated in this frame.
func (s *Store) Count(t Type) int {
	if a, ok := s.arenas[t]; ok {
		return len(a.entries)
	}
	return 0
}

// Each calls fn for every widget of type t, in order of allocation.
func (s *Store) Each(t Type, fn func(ID, *Entry)) {
	a, ok := s.arenas[t]
	if !ok {
		return
	}
	for i := range a.entries {
		fn(MakeID(t, i), &a.entries[i])
	}
}

// Reset forgets all widgets of the current frame. Capacity and interaction
// states are kept.
func (s *Store) Reset() {
	for _, a := range s.arenas {
		for i := range a.entries {
			a.entries[i] = Entry{}
		}
		a.entries = a.entries[:0]
	}
}
