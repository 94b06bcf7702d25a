package json

import (
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	insaneJSON "github.com/ozontech/insane-json"

	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
)

const cacheKey = "json"

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:     "generic_json",
		Factory:  factory,
		Stage:    pipeline.StageUnprocessedStructured,
		Variants: event.AllVariants,
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin extracts top-level fields from messages that are one JSON object.
// Nested objects and arrays are kept as their raw JSON text, scalars keep
// their type.
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	parsed := cache.GetOrCompute(cacheKey, func() any {
		fields := parseObject(ev.Message)
		if fields == nil {
			return nil
		}
		return fields
	})

	fields, _ := parsed.(*orderedmap.OrderedMap[string, any])
	if fields == nil || fields.Len() == 0 {
		return false
	}

	pipeline.ApplyOrderedAnyFieldMap(ev, fields, "generic", "unknown_json", "unknown")
	return true
}

func parseObject(message string) *orderedmap.OrderedMap[string, any] {
	// cheap guard before feeding the parser
	trimmed := strings.TrimSpace(message)
	if len(trimmed) < 2 || trimmed[0] != '{' {
		return nil
	}

	root, err := insaneJSON.DecodeString(trimmed)
	if err != nil {
		return nil
	}
	defer insaneJSON.Release(root)

	if !root.IsObject() {
		return nil
	}

	fields := orderedmap.NewOrderedMap[string, any]()
	for _, field := range root.AsFields() {
		name := field.AsString()
		fields.Set(name, nodeValue(root.Dig(name)))
	}
	return fields
}

func nodeValue(node *insaneJSON.Node) any {
	switch {
	case node.IsString():
		return node.AsString()
	case node.IsNumber():
		return node.AsFloat()
	case node.IsNull():
		return nil
	case node.IsObject(), node.IsArray():
		return string(node.EncodeToByte())
	default:
		return node.AsBool()
	}
}
