package leef

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
)

const (
	leef1CacheKey = "leef1"
	leef2CacheKey = "leef2"
)

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:     "generic_leef",
		Factory:  factory,
		Stage:    pipeline.StageUnprocessedStructured,
		Variants: event.AllVariants,
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin extracts fields from IBM QRadar LEEF 1.x/2.0 payloads. The LEEF
// header names the vendor and product; the lowercased event id becomes the
// message class, prefixed with the event category when the 2.0 header
// carries one.
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	fields := parse(ev, cache, leef2CacheKey, decoder.ParseLEEF2)
	if fields == nil {
		fields = parse(ev, cache, leef1CacheKey, decoder.ParseLEEF1)
	}
	if fields == nil {
		return false
	}

	vendor, _ := fields.Get("vendor")
	product, _ := fields.Get("product")
	eventID, _ := fields.Get("event_id")

	msgclass := strings.ToLower(eventID)
	if category, has := fields.Get("event_category"); has && category != "" {
		msgclass = strings.ToLower(category) + "_" + msgclass
	}

	pipeline.ApplyOrderedFieldMap(ev, fields,
		strings.ToLower(vendor), strings.ToLower(product), msgclass)
	return true
}

func parse(ev *event.Event, cache pipeline.ParseCache, key string,
	parser func(string) *orderedmap.OrderedMap[string, string],
) *orderedmap.OrderedMap[string, string] {
	parsed := cache.GetOrCompute(key, func() any {
		fields := parser(ev.Message)
		if fields == nil {
			return nil
		}
		return fields
	})

	fields, _ := parsed.(*orderedmap.OrderedMap[string, string])
	return fields
}
