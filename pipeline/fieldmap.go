package pipeline

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/logger"
)

// ApplyFieldMapping merges a plugin's extracted fields into the record and
// assigns its structure classification. Keys already present keep their
// first value: plugins run generic to specific, and a silent overwrite
// would make results depend on registration order in ways that are hard to
// test, so a collision is only counted and logged. Zero pairs is a valid
// no-op, some formats legitimately match with nothing to extract.
//
// names and values must have equal length; anything else is a bug in the
// calling plugin and panics (the orchestrator isolates it to that plugin).
func ApplyFieldMapping(ev *event.Event, names []string, values []any, vendor, product, msgclass string) {
	if len(names) != len(values) {
		logger.Panicf("field mapping got %d names but %d values (vendor=%s product=%s)",
			len(names), len(values), vendor, product)
	}

	setClassification(ev, vendor, product, msgclass)
	for i := range names {
		setEventData(ev, names[i], values[i], vendor, product)
	}
}

// ApplyOrderedFieldMap is ApplyFieldMapping for plugins whose parser
// already produced an ordered map.
func ApplyOrderedFieldMap(ev *event.Event, fields *orderedmap.OrderedMap[string, string], vendor, product, msgclass string) {
	setClassification(ev, vendor, product, msgclass)
	for el := fields.Front(); el != nil; el = el.Next() {
		setEventData(ev, el.Key, el.Value, vendor, product)
	}
}

// ApplyOrderedAnyFieldMap is ApplyOrderedFieldMap for parsers producing
// typed values rather than strings.
func ApplyOrderedAnyFieldMap(ev *event.Event, fields *orderedmap.OrderedMap[string, any], vendor, product, msgclass string) {
	setClassification(ev, vendor, product, msgclass)
	for el := fields.Front(); el != nil; el = el.Next() {
		setEventData(ev, el.Key, el.Value, vendor, product)
	}
}

func setClassification(ev *event.Event, vendor, product, msgclass string) {
	next := event.Classification{Vendor: vendor, Product: product, MsgClass: msgclass}
	if ev.Classification.IsZero() {
		ev.Classification = next
		return
	}
	if ev.Classification != next {
		classificationConflictsTotal.Inc()
		logger.Debugf("classification already assigned to %v, keeping it over %v",
			ev.Classification, next)
	}
}

func setEventData(ev *event.Event, name string, value any, vendor, product string) {
	if _, has := ev.EventData.Get(name); has {
		fieldCollisionsTotal.WithLabelValues(vendor, product).Inc()
		logger.Debugf("event data key %q already set, keeping the first value", name)
		return
	}
	ev.EventData.Set(name, value)
}
