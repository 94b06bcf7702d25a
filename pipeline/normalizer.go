package pipeline

import (
	"context"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/logger"
)

// Settings tune a Normalizer. Zero values select the defaults: the
// DefaultRegistry and the wall clock.
type Settings struct {
	Registry *Registry

	// Clock provides the reference time handed to grammars that need a
	// year/zone context (the BSD timestamp has neither).
	Clock func() time.Time
}

// Normalizer drives a full decode: it picks the top-level grammar, then
// runs the staged plugin chain over the record. Decoding one message is
// synchronous and allocates its own record and parse cache, so a single
// Normalizer may be used from any number of goroutines.
type Normalizer struct {
	registry *Registry
	clock    func() time.Time
	tracer   trace.Tracer
}

// New freezes the registry and returns a ready Normalizer. All plugin
// registration must be done by this point.
func New(settings Settings) *Normalizer {
	registry := settings.Registry
	if registry == nil {
		registry = DefaultRegistry
	}
	clock := settings.Clock
	if clock == nil {
		clock = time.Now
	}

	registry.Freeze()

	return &Normalizer{
		registry: registry,
		clock:    clock,
		tracer:   otel.Tracer("github.com/lognorm/lognorm/pipeline"),
	}
}

// Decode normalizes one raw message. It always returns a record: at worst
// a raw-variant one carrying the whole text as message. The caller owns
// the returned record; the Normalizer keeps no reference to it.
func (n *Normalizer) Decode(ctx context.Context, raw string) *event.Event {
	_, span := n.tracer.Start(ctx, "lognorm.Decode")
	defer span.End()

	ev := n.parseGrammar(raw)
	decodeTotal.WithLabelValues(ev.Variant.String()).Inc()
	span.SetAttributes(attribute.String("lognorm.variant", ev.Variant.String()))

	if ev.Message != "" {
		n.runPlugins(ev)
	}

	if !ev.Classification.IsZero() {
		span.SetAttributes(
			attribute.String("lognorm.vendor", ev.Classification.Vendor),
			attribute.String("lognorm.product", ev.Classification.Product),
			attribute.String("lognorm.msgclass", ev.Classification.MsgClass),
		)
	}

	return ev
}

// parseGrammar tries formats strictest first. RFC5424 rejects anything
// without its exact header; RFC3164 accepts any non-empty text and
// classifies how much envelope it actually found.
func (n *Normalizer) parseGrammar(raw string) *event.Event {
	if ev, err := decoder.ParseRFC5424(raw); err == nil {
		return ev
	}
	if ev, err := decoder.ParseRFC3164(raw, n.clock()); err == nil {
		return ev
	}

	ev := event.New(event.VariantRaw)
	ev.Message = strings.TrimSuffix(raw, "\n")
	return ev
}

// runPlugins walks all stages in fixed order and tries every plugin
// registered for the record's variant. A match never short-circuits the
// chain: later, more specific plugins may add fields a generic one could
// not.
func (n *Normalizer) runPlugins(ev *event.Event) {
	cache := make(ParseCache)
	for _, stage := range stages {
		for _, rp := range n.registry.get(stage, ev.Variant) {
			if n.tryDecode(rp, ev, cache) {
				pluginMatchesTotal.WithLabelValues(rp.info.Type).Inc()
				logger.Debugf("plugin %q matched at stage %s", rp.info.Type, stage)
			}
		}
	}
}

// tryDecode isolates one plugin invocation: a panicking plugin is counted,
// logged and treated as "did not match", it never aborts the message.
func (n *Normalizer) tryDecode(rp registeredPlugin, ev *event.Event, cache ParseCache) (matched bool) {
	defer func() {
		if r := recover(); r != nil {
			matched = false
			pluginPanicsTotal.WithLabelValues(rp.info.Type).Inc()
			logger.Errorf("plugin %q panicked, skipping it: %v", rp.info.Type, r)
		}
	}()

	return rp.plugin.Decode(ev, cache)
}
