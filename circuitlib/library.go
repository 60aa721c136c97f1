// Package circuitlib provides the circuit model repository that the naming
// layer resolves model identifiers against.
package circuitlib

import (
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// ModelID identifies a circuit model inside a library.
type ModelID int

// ModelIDInvalid is never returned by a library for an existing model.
const ModelIDInvalid ModelID = -1

// A Library answers read-only questions about circuit models. Passing an
// identifier that the library does not know is a programming error and
// panics.
type Library interface {
	ModelName(id ModelID) string
	ModelType(id ModelID) ModelKind
	PassGateLogicModel(id ModelID) ModelID
	GateType(id ModelID) GateKind
}

type model struct {
	name          string
	kind          ModelKind
	gateKind      GateKind
	passGateModel ModelID
}

// CircuitLibrary is the default Library. Models are added first, then the
// library is sealed and only read from.
type CircuitLibrary struct {
	models []model
	byName map[string]ModelID
	sealed atomic.Bool
}

// NewCircuitLibrary creates an empty library.
func NewCircuitLibrary() *CircuitLibrary {
	return &CircuitLibrary{
		byName: make(map[string]ModelID),
	}
}

// AddModel adds a model and returns its identifier. Model names are unique.
func (l *CircuitLibrary) AddModel(name string, kind ModelKind) ModelID {
	l.mustNotBeSealed()

	if name == "" {
		log.Panicf("circuit model name must not be empty")
	}

	if _, found := l.byName[name]; found {
		log.Panicf("circuit model %s already exists", name)
	}

	if _, known := kindNames[kind]; !known {
		log.Panicf("circuit model %s has invalid type %s", name, kind)
	}

	id := ModelID(len(l.models))
	l.models = append(l.models, model{
		name:          name,
		kind:          kind,
		passGateModel: ModelIDInvalid,
	})
	l.byName[name] = id

	return id
}

// SetGateType sets the logic function of a gate model.
func (l *CircuitLibrary) SetGateType(id ModelID, gate GateKind) {
	l.mustNotBeSealed()

	m := l.mustFind(id)
	if m.kind != KindGate {
		log.Panicf("circuit model %s is a %s, not a gate", m.name, m.kind)
	}

	m.gateKind = gate
}

// SetPassGateLogicModel sets the model used to implement the pass gates of
// a multiplexer or LUT.
func (l *CircuitLibrary) SetPassGateLogicModel(id, passGate ModelID) {
	l.mustNotBeSealed()

	m := l.mustFind(id)
	l.mustFind(passGate)
	m.passGateModel = passGate
}

// Seal stops the library from accepting modifications. The naming layer may
// read a sealed library from many goroutines.
func (l *CircuitLibrary) Seal() {
	l.sealed.Store(true)
}

// Sealed tells if the library is sealed.
func (l *CircuitLibrary) Sealed() bool {
	return l.sealed.Load()
}

// NumModels returns the number of models in the library.
func (l *CircuitLibrary) NumModels() int {
	return len(l.models)
}

// Models returns the identifiers of all the models, in insertion order.
func (l *CircuitLibrary) Models() []ModelID {
	ids := make([]ModelID, len(l.models))
	for i := range l.models {
		ids[i] = ModelID(i)
	}

	return ids
}

// ModelByName finds a model by its name.
func (l *CircuitLibrary) ModelByName(name string) (ModelID, bool) {
	id, found := l.byName[name]
	return id, found
}

// ModelName returns the name of a model.
func (l *CircuitLibrary) ModelName(id ModelID) string {
	return l.mustFind(id).name
}

// ModelType returns the type of a model.
func (l *CircuitLibrary) ModelType(id ModelID) ModelKind {
	return l.mustFind(id).kind
}

// PassGateLogicModel returns the pass-gate model of a model. It panics if
// the model does not have one.
func (l *CircuitLibrary) PassGateLogicModel(id ModelID) ModelID {
	m := l.mustFind(id)
	if m.passGateModel == ModelIDInvalid {
		log.Panicf("circuit model %s has no pass gate logic model", m.name)
	}

	return m.passGateModel
}

// GateType returns the logic function of a gate model.
func (l *CircuitLibrary) GateType(id ModelID) GateKind {
	m := l.mustFind(id)
	if m.kind != KindGate {
		log.Panicf("circuit model %s is a %s, not a gate", m.name, m.kind)
	}

	return m.gateKind
}

func (l *CircuitLibrary) mustFind(id ModelID) *model {
	if id < 0 || int(id) >= len(l.models) {
		log.Panicf("circuit model id %d does not exist", int(id))
	}

	return &l.models[id]
}

func (l *CircuitLibrary) mustNotBeSealed() {
	if l.sealed.Load() {
		log.Panicf("circuit library is sealed")
	}
}
