package fortigate

import (
	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/pipeline"
	"github.com/lognorm/lognorm/plugin/msg/kv"
)

func init() {
	pipeline.DefaultRegistry.Register(&pipeline.PluginStaticInfo{
		Type:     "fortinet_fortigate",
		Factory:  factory,
		Stage:    pipeline.StageSecondPass,
		Variants: event.SyslogVariants,
	})
}

func factory() pipeline.Plugin {
	return &Plugin{}
}

// Plugin recognizes Fortinet FortiGate key=value payloads. FortiGate logs
// always carry eventtime, type, subtype and a 10-digit logid; anything
// without that envelope is left for the generic key=value plugin.
//
// Reference: Fortinet FortiGate syslog message formats,
// https://docs.fortinet.com/document/fortigate/latest/administration-guide/333255/syslog-message-formats
type Plugin struct{}

func (p *Plugin) Decode(ev *event.Event, cache pipeline.ParseCache) bool {
	fields := kv.Parse(ev, cache)
	if fields == nil {
		return false
	}

	if _, has := fields.Get("eventtime"); !has {
		return false
	}
	logID, _ := fields.Get("logid")
	if len(logID) != 10 {
		return false
	}
	logType, hasType := fields.Get("type")
	subtype, hasSubtype := fields.Get("subtype")
	if !hasType || !hasSubtype {
		return false
	}

	pipeline.ApplyOrderedFieldMap(ev, fields, "fortinet", "fortigate", logType+"_"+subtype)
	return true
}
