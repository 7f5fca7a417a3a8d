package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/GriffinCanCode/measurements/internal/types"
)

var (
	// ErrInvalidToolID is returned for tool IDs without a service prefix
	ErrInvalidToolID = errors.New("invalid tool ID format")
	// ErrServiceNotFound is returned when no provider owns the tool's service
	ErrServiceNotFound = errors.New("service not found")
	// ErrDuplicateService is returned when a service ID is registered twice
	ErrDuplicateService = errors.New("service already registered")
)

// Relevance weights used by Discover.
const (
	weightID         = 10.0
	weightTool       = 4.0
	weightCapability = 3.0
	weightWord       = 2.0
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry routes tool calls to the provider that owns the tool's prefix.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds a provider under its definition's ID
func (r *Registry) Register(provider Provider) error {
	id := provider.Definition().ID
	if id == "" || strings.Contains(id, ".") {
		return fmt.Errorf("register %q: service ID must be non-empty and dot-free", id)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[id]; ok {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateService)
	}
	r.providers[id] = provider
	return nil
}

// Get retrieves a provider by service ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[serviceID]
	return p, ok
}

// definitions snapshots every definition ordered by ID.
func (r *Registry) definitions() []types.Service {
	r.mu.RLock()
	defs := make([]types.Service, 0, len(r.providers))
	for _, p := range r.providers {
		defs = append(defs, p.Definition())
	}
	r.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// List returns services ordered by ID, optionally filtered by category
func (r *Registry) List(category *types.Category) []types.Service {
	out := []types.Service{}
	for _, def := range r.definitions() {
		if category == nil || def.Category == *category {
			out = append(out, def)
		}
	}
	return out
}

// Discover ranks services against a free-text query such as
// "bessel uncertainty". Ties keep ID order.
func (r *Registry) Discover(query string, limit int) []types.Service {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 || limit <= 0 {
		return []types.Service{}
	}

	type scored struct {
		def   types.Service
		score float64
	}
	var hits []scored
	for _, def := range r.definitions() {
		if s := relevance(terms, def); s > 0 {
			hits = append(hits, scored{def, s})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]types.Service, 0, min(limit, len(hits)))
	for _, h := range hits[:min(limit, len(hits))] {
		out = append(out, h.def)
	}
	return out
}

// Execute runs a tool. The service is the tool ID up to the first dot.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return failure(ErrInvalidToolID.Error()), fmt.Errorf("%w: %s", ErrInvalidToolID, toolID)
	}

	provider, ok := r.Get(serviceID)
	if !ok {
		err := fmt.Errorf("%w: %s", ErrServiceNotFound, serviceID)
		return failure(err.Error()), err
	}
	return provider.Execute(ctx, toolID, params, appCtx)
}

// Stats summarises what is registered
func (r *Registry) Stats() map[string]interface{} {
	defs := r.definitions()
	tools := 0
	categories := make(map[string]int)
	for _, def := range defs {
		tools += len(def.Tools)
		categories[string(def.Category)]++
	}

	return map[string]interface{}{
		"total_services": len(defs),
		"total_tools":    tools,
		"categories":     categories,
	}
}

// relevance scores each query term once against the strongest field it hits.
func relevance(terms []string, def types.Service) float64 {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(def.Name + " " + def.Description + " " + string(def.Category))) {
		words[w] = true
	}

	score := 0.0
	for _, term := range terms {
		switch {
		case term == def.ID:
			score += weightID
		case matchesTool(term, def.Tools):
			score += weightTool
		case containsFold(def.Capabilities, term):
			score += weightCapability
		case words[term]:
			score += weightWord
		}
	}
	return score
}

// matchesTool reports whether term names a tool, by full ID or by the part
// after the service prefix.
func matchesTool(term string, tools []types.Tool) bool {
	for _, t := range tools {
		_, short, _ := strings.Cut(t.ID, ".")
		if term == strings.ToLower(t.ID) || term == strings.ToLower(short) || term == strings.ToLower(t.Name) {
			return true
		}
	}
	return false
}

func containsFold(list []string, term string) bool {
	for _, s := range list {
		if strings.EqualFold(s, term) {
			return true
		}
	}
	return false
}

func failure(msg string) *types.Result {
	return &types.Result{Success: false, Error: &msg}
}
