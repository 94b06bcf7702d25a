package pipeline

import (
	"github.com/lognorm/lognorm/event"
)

// Stage is one ordered phase of the plugin chain. Every decode walks all
// stages in this fixed order; within a stage plugins run in registration
// order.
type Stage int

const (
	StageFirstPass Stage = iota
	StageSecondPass
	StageUnprocessedStructured
	StageUnprocessedMessages
)

var stages = []Stage{
	StageFirstPass,
	StageSecondPass,
	StageUnprocessedStructured,
	StageUnprocessedMessages,
}

func (s Stage) String() string {
	switch s {
	case StageFirstPass:
		return "first_pass"
	case StageSecondPass:
		return "second_pass"
	case StageUnprocessedStructured:
		return "unprocessed_structured"
	case StageUnprocessedMessages:
		return "unprocessed_messages"
	default:
		return "unknown"
	}
}

// Plugin inspects a record's message and, on match, merges extracted
// fields into it via the field mapping engine. Returning true means the
// record was mutated and that mutation is final for this plugin; it does
// not stop the chain, later plugins still run and may add more fields.
//
// One plugin instance serves all decode calls concurrently, so instances
// must keep per-message state in the ParseCache, never in themselves.
type Plugin interface {
	Decode(ev *event.Event, cache ParseCache) bool
}

type PluginFactory func() Plugin

// PluginStaticInfo describes a plugin to the registry: which stage it runs
// in and which record variants it applies to.
type PluginStaticInfo struct {
	Type     string
	Factory  PluginFactory
	Stage    Stage
	Variants []event.Variant
}
