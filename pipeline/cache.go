package pipeline

// ParseCache memoizes expensive message parses within one decode call, so
// any number of plugins can share e.g. a single key=value tokenization.
// Keys name the parser, not the content: a cache belongs to exactly one
// message's decode invocation and must never be reused for another
// message, or stale entries will silently corrupt the result.
type ParseCache map[string]any

// GetOrCompute returns the cached value for key, running compute at most
// once per key per invocation. A nil compute result is cached too: "this
// parser found nothing" is as expensive to recompute as a full parse.
func (c ParseCache) GetOrCompute(key string, compute func() any) any {
	if value, has := c[key]; has {
		return value
	}
	value := compute()
	c[key] = value
	return value
}
