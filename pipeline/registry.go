package pipeline

import (
	"go.uber.org/atomic"

	"github.com/lognorm/lognorm/event"
	"github.com/lognorm/lognorm/logger"
)

// DefaultRegistry is where the bundled plugins register themselves from
// their package init.
var DefaultRegistry = NewRegistry()

type stageVariantKey struct {
	stage   Stage
	variant event.Variant
}

// Registry holds the (variant, stage) -> ordered plugin lists. It has an
// explicit two-phase lifecycle: plugins register during process init, then
// the first Normalizer freezes it and it becomes read-only, shareable by
// any number of concurrent decode calls without locks. Registering after
// the freeze is a programming error and fatal.
type Registry struct {
	frozen atomic.Bool

	infos   []*PluginStaticInfo
	byStage map[stageVariantKey][]registeredPlugin
}

type registeredPlugin struct {
	info   *PluginStaticInfo
	plugin Plugin
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Register(info *PluginStaticInfo) {
	if r.frozen.Load() {
		logger.Fatalf("can't register plugin %q: registry is frozen", info.Type)
	}
	if info.Type == "" || info.Factory == nil || len(info.Variants) == 0 {
		logger.Fatalf("incomplete registration for plugin %q", info.Type)
	}
	for _, have := range r.infos {
		if have.Type == info.Type {
			logger.Fatalf("plugin %q is already registered", info.Type)
		}
	}

	r.infos = append(r.infos, info)
	logger.Debugf("message plugin %q registered for stage %s", info.Type, info.Stage)
}

// Freeze ends the registration phase and builds the lookup tables.
// Idempotent; the first caller wins.
func (r *Registry) Freeze() {
	if r.frozen.Swap(true) {
		return
	}

	r.byStage = make(map[stageVariantKey][]registeredPlugin)
	for _, info := range r.infos {
		plugin := info.Factory()
		for _, variant := range info.Variants {
			key := stageVariantKey{info.Stage, variant}
			r.byStage[key] = append(r.byStage[key], registeredPlugin{info, plugin})
		}
	}
}

func (r *Registry) get(stage Stage, variant event.Variant) []registeredPlugin {
	return r.byStage[stageVariantKey{stage, variant}]
}
