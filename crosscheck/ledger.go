// Package crosscheck verifies that the netlist writers of different backends
// agree on the names they synthesize.
//
// Every backend registers the name it gives to each design entity. Within a
// backend a name identifies one entity only. Across backends, Check reports
// the entities that are named differently or not named at all.
package crosscheck

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/sarchlab/fabricnaming/datarecording"
	"github.com/sarchlab/fabricnaming/naming"
)

// NamesTable is the table the recorder stores registrations in.
const NamesTable = "names"

// Registration is a name a backend gave to an entity, as stored by the
// recorder.
type Registration struct {
	Backend string
	Entity  string
	Name    string
}

type backendIndex struct {
	nameOf   map[string]string
	entityOf map[string]string
}

// Ledger collects the names registered by backends. It is safe for
// concurrent use.
type Ledger struct {
	mu       sync.Mutex
	backends map[string]*backendIndex
	entities map[string]bool
	recorder datarecording.DataRecorder
}

// Register records that backend names entity as name. Registering the same
// pair twice is a no-op. It panics if the backend already gave the entity
// another name, or gave the name to another entity.
func (l *Ledger) Register(backend, entity, name string) {
	if backend == "" || entity == "" {
		log.Panicf("backend and entity must not be empty, got %q and %q",
			backend, entity)
	}

	naming.IdentifierMustBeValid(name)

	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.backend(backend)

	if existing, found := idx.nameOf[entity]; found {
		if existing != name {
			log.Panicf("%s: %s is already named %s, cannot rename to %s",
				backend, entity, existing, name)
		}

		return
	}

	if owner, found := idx.entityOf[name]; found {
		log.Panicf("%s: name %s of %s collides with %s",
			backend, name, entity, owner)
	}

	idx.nameOf[entity] = name
	idx.entityOf[name] = entity
	l.entities[entity] = true

	if l.recorder != nil {
		l.recorder.InsertData(NamesTable, Registration{
			Backend: backend,
			Entity:  entity,
			Name:    name,
		})
	}
}

func (l *Ledger) backend(name string) *backendIndex {
	idx, found := l.backends[name]
	if !found {
		idx = &backendIndex{
			nameOf:   make(map[string]string),
			entityOf: make(map[string]string),
		}
		l.backends[name] = idx
	}

	return idx
}

// Lookup returns the name a backend gave to an entity.
func (l *Ledger) Lookup(backend, entity string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, found := l.backends[backend]
	if !found {
		return "", false
	}

	name, found := idx.nameOf[entity]

	return name, found
}

// Owner returns the entity a backend gave a name to.
func (l *Ledger) Owner(backend, name string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, found := l.backends[backend]
	if !found {
		return "", false
	}

	entity, found := idx.entityOf[name]

	return entity, found
}

// Backends returns the backends that registered at least one name, sorted.
func (l *Ledger) Backends() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sortedBackends()
}

func (l *Ledger) sortedBackends() []string {
	backends := make([]string, 0, len(l.backends))
	for b := range l.backends {
		backends = append(backends, b)
	}

	sort.Strings(backends)

	return backends
}

// NumNames returns how many entities a backend has named.
func (l *Ledger) NumNames(backend string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx, found := l.backends[backend]
	if !found {
		return 0
	}

	return len(idx.nameOf)
}

// Mismatch describes an entity the backends disagree on.
type Mismatch struct {
	Entity string

	// Names maps each backend that named the entity to the name it used.
	Names map[string]string

	// Missing lists the backends that did not name the entity, sorted.
	Missing []string
}

func (m Mismatch) String() string {
	parts := make([]string, 0, len(m.Names)+len(m.Missing))

	backends := make([]string, 0, len(m.Names))
	for b := range m.Names {
		backends = append(backends, b)
	}

	sort.Strings(backends)

	for _, b := range backends {
		parts = append(parts, b+"="+m.Names[b])
	}

	for _, b := range m.Missing {
		parts = append(parts, b+" missing")
	}

	return fmt.Sprintf("%s: %s", m.Entity, strings.Join(parts, ", "))
}

// Check compares the backends and returns the mismatches sorted by entity.
func (l *Ledger) Check() []Mismatch {
	l.mu.Lock()
	defer l.mu.Unlock()

	backends := l.sortedBackends()

	entities := make([]string, 0, len(l.entities))
	for e := range l.entities {
		entities = append(entities, e)
	}

	sort.Strings(entities)

	var mismatches []Mismatch

	for _, e := range entities {
		m := Mismatch{Entity: e, Names: make(map[string]string)}
		distinct := make(map[string]bool)

		for _, b := range backends {
			name, found := l.backends[b].nameOf[e]
			if !found {
				m.Missing = append(m.Missing, b)
				continue
			}

			m.Names[b] = name
			distinct[name] = true
		}

		if len(m.Missing) > 0 || len(distinct) > 1 {
			mismatches = append(mismatches, m)
		}
	}

	if len(mismatches) > 0 {
		log.WithField("count", len(mismatches)).
			Warn("backends disagree on names")
	}

	return mismatches
}
