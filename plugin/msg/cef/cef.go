package cef

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
)

const cacheKey = "cef"

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:     "generic_cef",
		Factory:  factory,
		Stage:    pipeline.StageUnprocessedStructured,
		Variants: event.AllVariants,
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin extracts fields from ArcSight CEF payloads. The classification
// comes straight from the CEF header: the lowercased device vendor/product
// pair plus the lowercased event name as message class.
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	parsed := cache.GetOrCompute(cacheKey, func() any {
		fields := decoder.ParseCEF(ev.Message)
		if fields == nil {
			return nil
		}
		return fields
	})

	fields, _ := parsed.(*orderedmap.OrderedMap[string, string])
	if fields == nil {
		return false
	}

	vendor, _ := fields.Get("device_vendor")
	product, _ := fields.Get("device_product")
	name, _ := fields.Get("name")

	pipeline.ApplyOrderedFieldMap(ev, fields,
		strings.ToLower(vendor), strings.ToLower(product), strings.ToLower(name))
	return true
}
