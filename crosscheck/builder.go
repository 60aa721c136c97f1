package crosscheck

import "github.com/sarchlab/fabricnaming/datarecording"

// Builder can build ledgers.
type Builder struct {
	recorder datarecording.DataRecorder
}

// MakeBuilder creates a builder for a ledger that keeps names in memory
// only.
func MakeBuilder() Builder {
	return Builder{}
}

// WithRecorder makes the ledger persist every new registration. The table
// NamesTable is created when the ledger is built.
func (b Builder) WithRecorder(r datarecording.DataRecorder) Builder {
	b.recorder = r
	return b
}

// Build creates a new ledger.
func (b Builder) Build() *Ledger {
	l := &Ledger{
		backends: make(map[string]*backendIndex),
		entities: make(map[string]bool),
		recorder: b.recorder,
	}

	if l.recorder != nil {
		l.recorder.CreateTable(NamesTable, Registration{})
	}

	return l
}
