package event

import (
	"time"

	"github.com/elliotchance/orderedmap/v2"
)

// Variant tags which grammar produced the record. The plugin registry
// dispatches on it, so a plugin written for BSD syslog never sees a CEF-only
// raw line.
type Variant int

const (
	// VariantRaw is the fallback for text no grammar recognized.
	VariantRaw Variant = iota
	// VariantSyslogBase is a message with a valid PRI header but no
	// parsable timestamp or tag.
	VariantSyslogBase
	VariantSyslogRFC3164
	VariantSyslogRFC5424
)

func (v Variant) String() string {
	switch v {
	case VariantSyslogBase:
		return "syslog_base"
	case VariantSyslogRFC3164:
		return "syslog_rfc3164"
	case VariantSyslogRFC5424:
		return "syslog_rfc5424"
	default:
		return "raw"
	}
}

// SyslogVariants covers every variant carrying a syslog envelope. Plugins
// that only care about the free-text message register for all of them.
var SyslogVariants = []Variant{VariantSyslogBase, VariantSyslogRFC3164, VariantSyslogRFC5424}

// AllVariants additionally includes raw records, for structured-format
// plugins (CEF, LEEF, JSON, KV) whose payloads arrive with or without a
// syslog envelope.
var AllVariants = []Variant{VariantRaw, VariantSyslogBase, VariantSyslogRFC3164, VariantSyslogRFC5424}

// PriorityUnset marks Priority/Facility/Severity of non-syslog records.
const PriorityUnset = -1

// SDElement is one RFC5424 structured-data element. Param order is kept as
// written; duplicate SD-IDs stay separate elements.
type SDElement struct {
	ID     string
	Params *orderedmap.OrderedMap[string, string]
}

// Classification is the (vendor, product, message class) triple set by the
// most specific plugin that matched. Write-once per decode; the field
// mapping engine keeps the first writer on conflict.
type Classification struct {
	Vendor   string
	Product  string
	MsgClass string
}

func (c Classification) IsZero() bool {
	return c == Classification{}
}

// Event is the canonical record every grammar and plugin writes into.
// One instance exists per raw message; it is owned by a single decode call
// and must not be mutated after the orchestrator hands it off.
type Event struct {
	Variant Variant

	// Timestamp is zero when the source omitted it or it failed to parse.
	// The grammar layer never substitutes the current time.
	Timestamp time.Time

	Priority int
	Facility int
	Severity int

	// RFC5424 header identifiers, "" when absent ("-" on the wire).
	Hostname string
	AppName  string
	ProcID   string
	MsgID    string

	StructuredData []SDElement
	Message        string

	Classification Classification

	// EventData accumulates attributes across all matched plugins,
	// insertion-ordered, first writer wins per key.
	EventData *orderedmap.OrderedMap[string, any]
}

func New(variant Variant) *Event {
	return &Event{
		Variant:   variant,
		Priority:  PriorityUnset,
		Facility:  PriorityUnset,
		Severity:  PriorityUnset,
		EventData: orderedmap.NewOrderedMap[string, any](),
	}
}

// SetPriority fills Priority and the derived Facility/Severity pair.
// PRI values above 191 do not exist (23*8+7).
func (e *Event) SetPriority(pri int) {
	e.Priority = pri
	e.Facility = pri / 8
	e.Severity = pri % 8
}

func (e *Event) HasPriority() bool {
	return e.Priority != PriorityUnset
}

func (e *Event) HasTimestamp() bool {
	return !e.Timestamp.IsZero()
}
