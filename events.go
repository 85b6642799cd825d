package simkernel

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
)

// Event type constants, reverse-DNS, one family per kernel component that
// narrates state transitions.
const (
	EventTypeRunStarted         = "com.simkernel.run.started"
	EventTypeRunStopped         = "com.simkernel.run.stopped"
	EventTypeEventFired         = "com.simkernel.event.fired"
	EventTypeProcessAdvanced    = "com.simkernel.process.advanced"
	EventTypeProcessTerminated  = "com.simkernel.process.terminated"
	EventTypeResourceStarved    = "com.simkernel.resource.starved"
	EventTypeResourceGranted    = "com.simkernel.resource.granted"
	EventTypePetriTransitionFired = "com.simkernel.petri.transition.fired"
)

// EventEmitter is the sink for structured lifecycle notifications. It is
// independent of the simulated-time trace sink: the trace sink narrates the
// run for a human reading along; the emitter lets an embedding program
// observe the run programmatically (metrics, audit trail, UI updates).
type EventEmitter interface {
	Emit(ctx context.Context, event cloudevents.Event)
}

// EventEmitterFunc adapts a plain function to EventEmitter.
type EventEmitterFunc func(ctx context.Context, event cloudevents.Event)

func (f EventEmitterFunc) Emit(ctx context.Context, event cloudevents.Event) { f(ctx, event) }

// NopEmitter discards every event. It is the Simulator's default so emission
// is opt-in.
var NopEmitter EventEmitter = EventEmitterFunc(func(context.Context, cloudevents.Event) {})

// NewTraceEvent builds a CloudEvent the way modular.NewCloudEvent does: a
// fresh UUID, the given type/source, JSON-encoded data, and any metadata
// promoted to CloudEvents extension attributes. Exported so extenders
// (the petri package, model authors wiring their own EventEmitter) can emit
// events in the same shape the Simulator itself uses.
func NewTraceEvent(eventType, source string, data any, metadata map[string]any) cloudevents.Event {
	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetSource(source)
	event.SetType(eventType)
	event.SetTime(time.Now())
	_ = event.SetData(cloudevents.ApplicationJSON, data)
	for k, v := range metadata {
		event.SetExtension(k, v)
	}
	return event
}

func (s *Simulator) emit(ctx context.Context, eventType string, data any, metadata map[string]any) {
	s.Emit(ctx, eventType, "com.simkernel/simulator/"+s.runID, data, metadata)
}

// Emit lets extenders outside this package (the petri overlay, custom
// event notices) publish a CloudEvent through the Simulator's own emitter,
// in the same shape its built-in lifecycle events use.
func (s *Simulator) Emit(ctx context.Context, eventType, source string, data any, metadata map[string]any) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(ctx, NewTraceEvent(eventType, source, data, metadata))
}
