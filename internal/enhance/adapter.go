// Package enhance integrates the optional neural second-opinion model into
// the classifier without ever putting it on the critical path: the model is
// loaded lazily at most once per process, a missing or broken artifact
// degrades to basic detection, and a failed inference only affects the call
// it happened on.
package enhance

import (
	"fmt"
	"sync"

	"github.com/Veraticus/word-salad/internal/common"
	"github.com/Veraticus/word-salad/internal/modelfile"
)

// Predictor is the single capability the decision engine needs from an
// inference backend: a gibberish verdict for a piece of text. Implementations
// must be safe for concurrent use.
type Predictor interface {
	Predict(text string) (gibberish bool, err error)
}

// BackendFactory builds a Predictor from a model directory. The factory is
// invoked at most once per process, after the artifact files have been
// verified to exist. A returned error marks the model unavailable for the
// rest of the process.
type BackendFactory func(dir string) (Predictor, error)

var (
	backendMu sync.RWMutex
	backend   BackendFactory
)

// RegisterBackend installs the inference backend, typically from an init
// function in a backend package. With no backend registered, configured
// models resolve to unavailable and detection stays basic.
func RegisterBackend(factory BackendFactory) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backend = factory
}

func currentBackend() BackendFactory {
	backendMu.RLock()
	defer backendMu.RUnlock()
	return backend
}

// State describes the adapter's position in its one-way lifecycle.
type State int

const (
	// NotConfigured means no model path was supplied.
	NotConfigured State = iota
	// Unavailable means loading was attempted and failed; the failure is
	// cached for the life of the process.
	Unavailable
	// Loaded means the model is ready for inference.
	Loaded
)

func (s State) String() string {
	switch s {
	case NotConfigured:
		return "not configured"
	case Unavailable:
		return "unavailable"
	case Loaded:
		return "loaded"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Cell is a one-time-initialization slot for a model handle. Concurrent
// first users block until exactly one load attempt finishes; afterwards the
// terminal state is shared read-only. The process-wide detector path uses a
// single shared Cell; tests construct their own.
type Cell struct {
	once      sync.Once
	state     State
	predictor Predictor
}

// sharedCell backs every Adapter created through NewAdapter. One model per
// process: the first configured path to be used wins.
var sharedCell Cell

// load resolves the cell to its terminal state. Only the first call does
// any work.
func (c *Cell) load(dir string) (State, Predictor) {
	c.once.Do(func() {
		c.state = Unavailable

		if !modelfile.Exists(dir) {
			common.LogDebug("model artifacts not found", common.Fields{"path": dir})
			return
		}

		factory := currentBackend()
		if factory == nil {
			common.LogDebug("no inference backend registered", common.Fields{"path": dir})
			return
		}

		predictor, err := factory(dir)
		if err != nil {
			// Load failures are cached as permanently unavailable; they are
			// never surfaced to classification callers.
			common.LogError(fmt.Errorf("%w: %v", common.ErrModelLoad, err),
				"enhanced detection disabled", common.Fields{"path": dir})
			return
		}

		c.state = Loaded
		c.predictor = predictor
	})
	return c.state, c.predictor
}

// Adapter gives a detector access to the lazily-loaded model. The zero
// value (no path) is a valid adapter that never enhances.
type Adapter struct {
	cell *Cell
	path string
}

// NewAdapter returns an adapter for the process-wide model slot. An empty
// path yields a NotConfigured adapter.
func NewAdapter(path string) *Adapter {
	return &Adapter{cell: &sharedCell, path: path}
}

// NewAdapterWithCell returns an adapter bound to a private cell. Tests use
// this to exercise the lifecycle without touching process-wide state.
func NewAdapterWithCell(path string, cell *Cell) *Adapter {
	return &Adapter{cell: cell, path: path}
}

// Configured reports whether a model path was supplied.
func (a *Adapter) Configured() bool {
	return a != nil && a.path != ""
}

// Available reports whether the model artifacts currently exist at the
// configured path. It does not trigger a load.
func (a *Adapter) Available() bool {
	return a.Configured() && modelfile.Exists(a.path)
}

// Predict runs the model on text, loading it first if this is the process's
// first use. ok is false when the model is not configured, unavailable, or
// the inference itself failed; the caller then keeps its basic verdict. A
// per-call inference failure does not poison the loaded state.
func (a *Adapter) Predict(text string) (gibberish, ok bool) {
	if !a.Configured() {
		return false, false
	}

	state, predictor := a.cell.load(a.path)
	if state != Loaded {
		return false, false
	}

	verdict, err := predictor.Predict(text)
	if err != nil {
		common.LogDebug("inference failed, keeping basic verdict", common.Fields{
			"error": fmt.Errorf("%w: %v", common.ErrInference, err).Error(),
		})
		return false, false
	}
	return verdict, true
}
