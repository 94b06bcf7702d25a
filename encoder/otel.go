package encoder

import (
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/lognorm/lognorm/event"
)

// SpanAttributes flattens a canonical record into OpenTelemetry span
// attributes, for exporters that attach decoded events to traces. Absent
// fields produce no attribute. Event data keys are prefixed to keep them
// out of the reserved log.* namespace.
func SpanAttributes(ev *event.Event) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 8+ev.EventData.Len())

	if ev.HasPriority() {
		attrs = append(attrs,
			attribute.Int("log.syslog.priority", ev.Priority),
			attribute.Int("log.syslog.facility", ev.Facility),
			attribute.Int("log.syslog.severity", ev.Severity),
		)
	}
	if ev.HasTimestamp() {
		attrs = append(attrs, attribute.String("log.timestamp", ev.Timestamp.Format(time.RFC3339Nano)))
	}
	if ev.Hostname != "" {
		attrs = append(attrs, attribute.String("log.hostname", ev.Hostname))
	}
	if ev.AppName != "" {
		attrs = append(attrs, attribute.String("log.app_name", ev.AppName))
	}
	if ev.ProcID != "" {
		attrs = append(attrs, attribute.String("log.proc_id", ev.ProcID))
	}
	if ev.MsgID != "" {
		attrs = append(attrs, attribute.String("log.msg_id", ev.MsgID))
	}
	if ev.Message != "" {
		attrs = append(attrs, attribute.String("log.message", ev.Message))
	}
	if !ev.Classification.IsZero() {
		attrs = append(attrs,
			attribute.String("log.vendor", ev.Classification.Vendor),
			attribute.String("log.product", ev.Classification.Product),
			attribute.String("log.msgclass", ev.Classification.MsgClass),
		)
	}

	for el := ev.EventData.Front(); el != nil; el = el.Next() {
		key := "log.event_data." + el.Key
		switch v := el.Value.(type) {
		case string:
			attrs = append(attrs, attribute.String(key, v))
		case float64:
			attrs = append(attrs, attribute.Float64(key, v))
		case int:
			attrs = append(attrs, attribute.Int(key, v))
		case bool:
			attrs = append(attrs, attribute.Bool(key, v))
		case nil:
			// null stays absent
		default:
			attrs = append(attrs, attribute.String(key, fmt.Sprint(v)))
		}
	}

	return attrs
}
