package kv

import (
	"github.com/elliotchance/orderedmap/v2"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
)

// CacheKey is shared with every plugin that wants the key=value
// tokenization of the message, so the parse runs once per message no
// matter how many of them consult it.
const CacheKey = "kv"

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:     "generic_kv",
		Factory:  factory,
		Stage:    pipeline.StageUnprocessedStructured,
		Variants: event.AllVariants,
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin extracts fields from generic "key=value key2="value 2"" messages
// that no vendor-specific plugin claimed.
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	fields := Parse(ev, cache)
	if fields == nil {
		return false
	}

	pipeline.ApplyOrderedFieldMap(ev, fields, "generic", "unknown_kv", "unknown")
	return true
}

// Parse returns the cached key=value tokenization of the record's message,
// nil when the message is not key=value shaped.
func Parse(ev *event.Event, cache pipeline.ParseCache) *orderedmap.OrderedMap[string, string] {
	parsed := cache.GetOrCompute(CacheKey, func() any {
		fields := decoder.ParseKV(ev.Message)
		if fields == nil {
			return nil
		}
		return fields
	})

	fields, _ := parsed.(*orderedmap.OrderedMap[string, string])
	return fields
}
