// Package stats keeps named run counters and gauges for the explorer
package stats

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Metric names written by the tick loop
const (
	Ticks          = "ticks"
	Regenerations  = "regen.count"
	PixelsComputed = "regen.pixels"
	Blocked        = "guard.blocked"
	Snapshots      = "snapshot.count"
	LastRegenMs    = "regen.last_ms"
	PeakRegenMs    = "regen.peak_ms"
)

// metrics maps names to lazily created values of type T
// Callers may cache the returned pointer and write to it without the lock
type metrics[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func (m *metrics[T]) get(name string) *T {
	m.mu.RLock()
	ptr, ok := m.items[name]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[name]; ok {
		return ptr
	}
	if m.items == nil {
		m.items = make(map[string]*T)
	}
	ptr = new(T)
	m.items[name] = ptr
	return ptr
}

// names returns registered names sorted
func (m *metrics[T]) names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.items))
	for k := range m.items {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Registry is the explorer's metrics facade, safe for concurrent use
type Registry struct {
	counters metrics[atomic.Int64]
	gauges   metrics[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Counter returns the counter for name, creating it on first use
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the gauge for name, creating it on first use
func (r *Registry) Gauge(name string) *Gauge {
	return r.gauges.get(name)
}

// Summary renders every metric as name=value in name order, counters first
func (r *Registry) Summary() string {
	var parts []string
	for _, name := range r.counters.names() {
		parts = append(parts, fmt.Sprintf("%s=%d", name, r.Counter(name).Load()))
	}
	for _, name := range r.gauges.names() {
		parts = append(parts, fmt.Sprintf("%s=%.2f", name, r.Gauge(name).Get()))
	}
	return strings.Join(parts, " ")
}
