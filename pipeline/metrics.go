package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lognorm/lognorm/metric"
)

var ctl = metric.NewCtl("pipeline", prometheus.DefaultRegisterer)

var (
	decodeTotal = ctl.RegisterCounterVec("decode_total",
		"Decoded messages by resulting record variant", "variant")
	pluginMatchesTotal = ctl.RegisterCounterVec("plugin_matches_total",
		"Plugin matches by plugin type", "plugin")
	pluginPanicsTotal = ctl.RegisterCounterVec("plugin_panics_total",
		"Plugins that panicked during decode and were skipped", "plugin")
	fieldCollisionsTotal = ctl.RegisterCounterVec("field_collisions_total",
		"Attempts to overwrite an event data key set earlier in the chain", "vendor", "product")
	classificationConflictsTotal = ctl.RegisterCounter("classification_conflicts_total",
		"Attempts to overwrite an already assigned structure classification")
)
