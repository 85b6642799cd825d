// Package petri is the stochastic Petri-net overlay: places, transitions,
// and weighted arcs compiled into the same future/conditional event kernel
// every other process abstraction in this module rides on.
package petri

import (
	"context"
	"fmt"
	"strings"

	simkernel "github.com/desim-project/simkernel"
)

// connectionKey identifies a (start, end) pair for duplicate detection.
type connectionKey struct {
	startID, endID int
}

// PetriNet owns a graph of places and transitions and drives it through a
// Simulator: each transition gets a conditional BeginFireEvent whose guard
// is Transition.CanFire, and each firing schedules a future EndFireEvent
// that completes the token flow.
type PetriNet struct {
	name        string
	places      map[int]*Place
	transitions map[int]*Transition
	seen        map[connectionKey]bool
	sim         *simkernel.Simulator
	lastPrint   float64
}

// New creates an empty, named PetriNet.
func New(name string) *PetriNet {
	return &PetriNet{
		name:        name,
		places:      make(map[int]*Place),
		transitions: make(map[int]*Transition),
		seen:        make(map[connectionKey]bool),
	}
}

func (n *PetriNet) nodeKind(id int) (NodeKind, bool) {
	if _, ok := n.places[id]; ok {
		return PlaceKind, true
	}
	if _, ok := n.transitions[id]; ok {
		return TransitionKind, true
	}
	return 0, false
}

// AddPlace adds a place with the given initial token count and capacity
// (use Unbounded for no limit). It fails with ErrDuplicateNode if id is
// already used by any node.
func (n *PetriNet) AddPlace(id int, name string, tokens, capacity int) error {
	if _, exists := n.nodeKind(id); exists {
		return fmt.Errorf("%w: %d (%s)", ErrDuplicateNode, id, name)
	}
	n.places[id] = newPlace(id, name, tokens, capacity)
	return nil
}

// AddTransition adds a transition whose firing duration is sampled from
// duration each time it begins firing. It fails with ErrDuplicateNode if id
// is already used, or ErrNilDuration if duration is nil.
func (n *PetriNet) AddTransition(id int, name string, duration DurationFunc) error {
	if _, exists := n.nodeKind(id); exists {
		return fmt.Errorf("%w: %d (%s)", ErrDuplicateNode, id, name)
	}
	if duration == nil {
		return fmt.Errorf("%w: transition %d (%s)", ErrNilDuration, id, name)
	}
	t := newTransition(id, name, duration)
	t.net = n
	n.transitions[id] = t
	return nil
}

// AddConnection links startID to endID with the given arc weight (default
// weight is 1 if the caller passes 0 or less). Exactly one endpoint must be
// a place and the other a transition; direction (place->transition is an
// input arc, transition->place is an output arc) is inferred from which
// endpoint is which kind. Fails with ErrUnknownNode, ErrSameKindConnection,
// or ErrDuplicateConnection.
func (n *PetriNet) AddConnection(startID, endID, weight int) error {
	if weight <= 0 {
		weight = 1
	}
	startKind, ok := n.nodeKind(startID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, startID)
	}
	endKind, ok := n.nodeKind(endID)
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, endID)
	}
	if startKind == endKind {
		return fmt.Errorf("%w: %d -> %d", ErrSameKindConnection, startID, endID)
	}
	key := connectionKey{startID, endID}
	if n.seen[key] {
		return fmt.Errorf("%w: %d -> %d", ErrDuplicateConnection, startID, endID)
	}
	n.seen[key] = true

	if startKind == PlaceKind {
		place := n.places[startID]
		transition := n.transitions[endID]
		transition.inputs = append(transition.inputs, arc{place: place, weight: weight})
	} else {
		transition := n.transitions[startID]
		place := n.places[endID]
		transition.outputs = append(transition.outputs, arc{place: place, weight: weight})
	}
	return nil
}

// Place returns the place with the given id, or nil if none exists.
func (n *PetriNet) Place(id int) *Place { return n.places[id] }

// Transition returns the transition with the given id, or nil if none
// exists.
func (n *PetriNet) Transition(id int) *Transition { return n.transitions[id] }

// Initialize schedules every transition's first BeginFireEvent as a
// conditional event. Call this once, after the net is fully built, before
// sim.Run.
func (n *PetriNet) Initialize(sim *simkernel.Simulator) {
	n.sim = sim
	n.lastPrint = sim.Clock()
	for _, t := range n.transitions {
		sim.ScheduleConditionalEvent(newBeginFireEvent(t))
	}
}

// printState writes the net's place/token snapshot to the simulator's trace
// sink, but only if simulated time advanced since the last print (it
// otherwise prints once per "round" of transitions that fire at the same
// instant instead of once per transition).
func (n *PetriNet) printState() {
	if n.sim.Clock() == n.lastPrint {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "petri net %q state:", n.name)
	for _, p := range n.places {
		fmt.Fprintf(&b, " %s:%d", p.name, p.tokens)
	}
	n.sim.Tracef("%s", b.String())
	n.lastPrint = n.sim.Clock()
}

// BeginFireEvent is the conditional event guarding a transition's start of
// firing: it fires as soon as Transition.CanFire holds, reserves the
// transition's input tokens, and schedules the matching EndFireEvent.
type BeginFireEvent struct {
	simkernel.BaseEvent
	transition *Transition
}

func newBeginFireEvent(t *Transition) *BeginFireEvent {
	e := &BeginFireEvent{BaseEvent: simkernel.NewBaseEvent(t.name+" begin-fire", -1, 0), transition: t}
	return e
}

// CanTrigger delegates to the transition's firing guard.
func (e *BeginFireEvent) CanTrigger(*simkernel.Simulator) bool { return e.transition.CanFire() }

// Trigger reserves each input arc's weight in tokens and schedules the
// transition's EndFireEvent at clock + duration().
func (e *BeginFireEvent) Trigger(sim *simkernel.Simulator) {
	t := e.transition
	for _, in := range t.inputs {
		in.place.reserved += in.weight
	}
	d := t.duration()
	end := newEndFireEvent(t, sim.Clock()+d)
	sim.ScheduleEvent(end)
	sim.Emit(context.Background(), simkernel.EventTypePetriTransitionFired, t.net.name+"/"+t.name,
		map[string]any{"transition": t.name, "phase": "begin"}, nil)
}

// EndFireEvent completes a transition's firing: the net's state is printed
// first (so the dump shows the marking left by the previous instant, and
// only if simulated time advanced since the last dump), then reserved input
// tokens are removed, output tokens are added, and a fresh BeginFireEvent
// re-enters the conditional list so the transition can fire again.
type EndFireEvent struct {
	simkernel.BaseEvent
	transition *Transition
}

func newEndFireEvent(t *Transition, at float64) *EndFireEvent {
	return &EndFireEvent{BaseEvent: simkernel.NewBaseEvent(t.name+" end-fire", at, 0), transition: t}
}

func (e *EndFireEvent) Trigger(sim *simkernel.Simulator) {
	t := e.transition
	t.net.printState()
	for _, in := range t.inputs {
		in.place.tokens -= in.weight
		in.place.reserved -= in.weight
	}
	for _, out := range t.outputs {
		out.place.tokens += out.weight
	}
	sim.ScheduleConditionalEvent(newBeginFireEvent(t))
	sim.Emit(context.Background(), simkernel.EventTypePetriTransitionFired, t.net.name+"/"+t.name,
		map[string]any{"transition": t.name, "phase": "end"}, nil)
}
