// Package session owns a component inventory for one interactive run and
// dispatches sorts and searches over it.
package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/c360studio/escapetower/component"
	"github.com/c360studio/escapetower/config"
	"github.com/c360studio/escapetower/metrics"
	"github.com/c360studio/escapetower/search"
	"github.com/c360studio/escapetower/sorting"
)

// SortReport describes one completed sort.
type SortReport struct {
	Algorithm sorting.Algorithm
	sorting.Measurement
}

// SearchReport describes one completed search.
type SearchReport struct {
	search.Result
	// Query is the name searched for, after truncation.
	Query string
	// Component is the match; zero when nothing was found.
	Component component.Component
}

// Session holds the inventory and whether it is currently sorted by name.
// A Session is not safe for concurrent use.
type Session struct {
	id           string
	inv          *component.Inventory
	sortedByName bool

	harness  *sorting.Harness
	recorder *metrics.Recorder
	display  config.DisplayConfig
	logger   *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithHarness sets the timing harness used for sorts.
func WithHarness(h *sorting.Harness) Option {
	return func(s *Session) { s.harness = h }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r *metrics.Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithDisplay sets the table column widths.
func WithDisplay(d config.DisplayConfig) Option {
	return func(s *Session) { s.display = d }
}

// WithLogger sets the logger; records carry the session ID.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// New creates a session over inv. A nil inventory starts empty and is
// filled interactively by Run.
func New(inv *component.Inventory, opts ...Option) *Session {
	if inv == nil {
		inv = component.NewInventory()
	}
	s := &Session{
		id:       uuid.New().String(),
		inv:      inv,
		harness:  sorting.NewHarness(),
		recorder: metrics.NewRecorder(),
		display:  config.DefaultConfig().Display,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.id)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Recorder returns the session's metrics recorder.
func (s *Session) Recorder() *metrics.Recorder {
	return s.recorder
}

// SortedByName reports whether a search is currently allowed.
func (s *Session) SortedByName() bool {
	return s.sortedByName
}

// Len returns the number of registered components.
func (s *Session) Len() int {
	return s.inv.Len()
}

// Components returns a copy of the inventory in its current order.
func (s *Session) Components() []component.Component {
	return s.inv.Snapshot()
}

// Register adds a component. Any change to membership invalidates the
// name ordering.
func (s *Session) Register(c component.Component) error {
	if err := s.inv.Add(c); err != nil {
		return err
	}
	s.sortedByName = false
	s.logger.Debug("Component registered", "name", c.Name, "count", s.inv.Len())
	return nil
}

// Sort runs the algorithm with the given ID over the inventory in place.
// A name sort enables search; every other sort disables it.
func (s *Session) Sort(id sorting.ID) (SortReport, error) {
	alg, ok := sorting.Lookup(id)
	if !ok {
		return SortReport{}, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, id)
	}

	m := s.harness.Measure(alg.Run, s.inv.Items())
	s.sortedByName = alg.ID == sorting.IDBubbleName

	s.recorder.RecordSort(string(alg.ID), m.Comparisons, m.Swaps, m.Elapsed)
	s.logger.Debug("Sort completed",
		"algorithm", alg.ID,
		"count", s.inv.Len(),
		"comparisons", m.Comparisons,
		"swaps", m.Swaps,
		"elapsed", m.Elapsed)

	return SortReport{Algorithm: alg, Measurement: m}, nil
}

// Search looks up a component by name. It fails with ErrNotSortedByName,
// without probing, unless the last sort was by name.
func (s *Session) Search(query string) (SearchReport, error) {
	if !s.sortedByName {
		s.rejectSearch()
		return SearchReport{}, ErrNotSortedByName
	}

	query = component.Truncate(query, component.MaxNameLen)
	items := s.inv.Items()
	r := search.BinaryByName(items, query)

	report := SearchReport{Result: r, Query: query}
	outcome := metrics.SearchNotFound
	if r.Found {
		report.Component = s.inv.At(r.Index)
		outcome = metrics.SearchFound
	}

	s.recorder.RecordSearch(outcome, r.Comparisons)
	s.logger.Debug("Search completed",
		"query", query,
		"found", r.Found,
		"index", r.Index,
		"comparisons", r.Comparisons)

	return report, nil
}

func (s *Session) rejectSearch() {
	s.recorder.RecordSearch(metrics.SearchRejected, 0)
	s.logger.Debug("Search rejected", "reason", ErrNotSortedByName.Error())
}
