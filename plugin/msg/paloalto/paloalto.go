package paloalto

import (
	"strings"

	"github.com/lognorm/lognorm/decoder"
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
)

const cacheKey = "csv_quoted"

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:    "paloalto_ngfw",
		Factory: factory,
		Stage:   pipeline.StageSecondPass,
		Variants: []event.Variant{
			event.VariantSyslogRFC3164,
			event.VariantSyslogRFC5424,
		},
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin recognizes Palo Alto NGFW syslog payloads, quoted CSV whose
// fourth field names the log type (TRAFFIC, THREAT, SYSTEM, CONFIG).
//
// Reference: https://docs.paloaltonetworks.com/pan-os/latest/pan-os-admin/monitoring/syslog-field-descriptions
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	parsed := cache.GetOrCompute(cacheKey, func() any {
		fields := decoder.ParseQuotedCSV(ev.Message)
		if fields == nil {
			return nil
		}
		return fields
	})

	fields, _ := parsed.([]string)
	if len(fields) <= 3 {
		return false
	}

	logType := fields[3]
	names := panTypeFieldMap[strings.ToUpper(logType)]
	if names == nil {
		return false
	}

	if len(fields) < len(names) {
		names = names[:len(fields)]
	} else {
		fields = fields[:len(names)]
	}
	values := make([]any, len(fields))
	for i, f := range fields {
		values[i] = f
	}

	pipeline.ApplyFieldMapping(ev, names, values, "paloalto", "ngfw", strings.ToLower(logType))
	return true
}
