package common

import (
	"sort"
	"sync"

	"github.com/GriffinCanCode/measurements/internal/measure"
	"github.com/GriffinCanCode/measurements/internal/shared/id"
)

// Entry is a stored measurement with its handle and optional name.
type Entry struct {
	ID          id.MeasurementID
	Name        string
	Measurement measure.Measurement
}

// Workspace stores measurements by handle. It owns the Allocator for every
// independent measurement it creates, so everything it holds can be
// combined.
type Workspace struct {
	alloc *measure.Allocator
	ids   *id.Generator

	mu      sync.RWMutex
	entries map[id.MeasurementID]Entry
	names   map[string]id.MeasurementID
}

// NewWorkspace creates an empty workspace.
func NewWorkspace() *Workspace {
	return &Workspace{
		alloc:   measure.NewAllocator(),
		ids:     id.NewGenerator(),
		entries: make(map[id.MeasurementID]Entry),
		names:   make(map[string]id.MeasurementID),
	}
}

// Allocator returns the tag allocator backing this workspace.
func (w *Workspace) Allocator() *measure.Allocator {
	return w.alloc
}

// Create mints an independent measurement and stores it.
func (w *Workspace) Create(name string, val, err float64) (id.MeasurementID, measure.Measurement, error) {
	m, e := w.alloc.New(val, err)
	if e != nil {
		return "", measure.Measurement{}, e
	}
	return w.Put(name, m), m, nil
}

// Put stores m and returns its handle. A non-empty name is rebound to the
// new handle.
func (w *Workspace) Put(name string, m measure.Measurement) id.MeasurementID {
	handle := id.MeasurementID(w.ids.GenerateWithPrefix(id.MeasurementPrefix))

	w.mu.Lock()
	defer w.mu.Unlock()

	w.entries[handle] = Entry{ID: handle, Name: name, Measurement: m}
	if name != "" {
		w.names[name] = handle
	}
	return handle
}

// Get looks a measurement up by handle, then by name.
func (w *Workspace) Get(ref string) (measure.Measurement, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	e, ok := w.lookup(ref)
	return e.Measurement, ok
}

// Entry is like Get but returns the full entry.
func (w *Workspace) Entry(ref string) (Entry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.lookup(ref)
}

// Delete removes a measurement. Measurements derived from it are unaffected.
func (w *Workspace) Delete(ref string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	e, ok := w.lookup(ref)
	if !ok {
		return false
	}
	delete(w.entries, e.ID)
	if e.Name != "" && w.names[e.Name] == e.ID {
		delete(w.names, e.Name)
	}
	return true
}

// Len returns the number of stored measurements.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}

// List returns all entries ordered by handle, which is creation order.
func (w *Workspace) List() []Entry {
	w.mu.RLock()
	out := make([]Entry, 0, len(w.entries))
	for _, e := range w.entries {
		out = append(out, e)
	}
	w.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Independent returns the entry holding the independent measurement with
// the given tag, if it is still stored.
func (w *Workspace) Independent(tag measure.Tag) (Entry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, e := range w.entries {
		if e.Measurement.IsIndependent() && e.Measurement.Tag() == tag {
			return e, true
		}
	}
	return Entry{}, false
}

func (w *Workspace) lookup(ref string) (Entry, bool) {
	if e, ok := w.entries[id.MeasurementID(ref)]; ok {
		return e, true
	}
	if handle, ok := w.names[ref]; ok {
		e, ok := w.entries[handle]
		return e, ok
	}
	return Entry{}, false
}
