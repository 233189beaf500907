package gui

import "sync"

// Cleanable is a store that evicts entries nobody touched recently.
type Cleanable interface {
	Cleanup(frame uint64)
}

var (
	storesMu     sync.Mutex
	stores       []Cleanable
	currentFrame uint64
)

// NextFrame advances the shared frame counter and evicts stale entries
// from every FrameStore. Begin calls it once per frame.
func NextFrame() {
	storesMu.Lock()
	currentFrame++
	frame := currentFrame
	all := stores
	storesMu.Unlock()

	for _, s := range all {
		s.Cleanup(frame)
	}
}

type frameEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore holds per-widget state of one type. An entry survives as long
// as its widget asks for it at least every other frame; widgets that stop
// being drawn lose their state automatically.
//
//	var scrollAreas = gui.NewFrameStore[ScrollAreaState]()
//	st := scrollAreas.Get(id, ScrollAreaState{})
type FrameStore[T any] struct {
	mu      sync.Mutex
	entries map[ID]*frameEntry[T]
}

// NewFrameStore creates a store and registers it with NextFrame.
// Create stores once, as package-level variables.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{entries: make(map[ID]*frameEntry[T])}
	storesMu.Lock()
	stores = append(stores, s)
	storesMu.Unlock()
	return s
}

// Get returns the entry for id, creating it from def if missing, and marks
// it used this frame. The pointer stays valid until the entry is evicted.
func (s *FrameStore[T]) Get(id ID, def T) *T {
	frame := frameNow()
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		e = &frameEntry[T]{value: def}
		s.entries[id] = e
	}
	e.lastFrame = frame
	return &e.value
}

// Lookup returns the entry for id without creating or touching it.
func (s *FrameStore[T]) Lookup(id ID) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id]; ok {
		return &e.value, true
	}
	return nil, false
}

// Delete drops the entry for id.
func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// Cleanup evicts entries last used before the previous frame.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.entries {
		if e.lastFrame+1 < frame {
			delete(s.entries, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func frameNow() uint64 {
	storesMu.Lock()
	defer storesMu.Unlock()
	return currentFrame
}
