package css

import (
	"strings"
	"sync"
)

// Properties is a transition layer resolved into its semantic roles. A nil
// field means the layer does not carry that sub-value.
type Properties struct {
	Property *Value
	Duration *Value
	Delay    *Value
	Timing   *Value
}

// Extract resolves the tokens of a layer into their roles. Roles are
// assigned by token shape, not position: time values fill duration then
// delay in tuple order, easing keywords and functions fill timing, and any
// other keyword is the transited property. Results are memoized on the
// layer's canonical text.
func Extract(layer Layer) Properties {
	key := layerKey(layer)
	if props, ok := extractCache.get(key); ok {
		return props
	}
	props := extract(layer)
	extractCache.put(key, props)
	return props
}

func extract(layer Layer) Properties {
	var props Properties
	for i := range layer {
		v := layer[i]
		switch v.Kind {
		case KindUnit:
			if props.Duration == nil {
				props.Duration = &v
			} else if props.Delay == nil {
				props.Delay = &v
			}
		case KindKeyword:
			if easingKeywords[v.Keyword] {
				if props.Timing == nil {
					props.Timing = &v
				}
			} else if props.Property == nil {
				props.Property = &v
			}
		case KindFunction:
			if props.Timing == nil {
				props.Timing = &v
			}
		}
	}
	return props
}

// Merge overlays partial onto p: each non-nil field of partial replaces the
// corresponding field, untouched fields keep their current value, and fields
// still absent after the overlay fall back to defaults. The result always
// has all four fields populated.
func (p Properties) Merge(partial Properties, defaults Defaults) Properties {
	merged := p
	if partial.Property != nil {
		merged.Property = partial.Property
	}
	if partial.Duration != nil {
		merged.Duration = partial.Duration
	}
	if partial.Delay != nil {
		merged.Delay = partial.Delay
	}
	if partial.Timing != nil {
		merged.Timing = partial.Timing
	}

	if merged.Property == nil {
		v := defaults.Property
		merged.Property = &v
	}
	if merged.Duration == nil {
		v := defaults.Duration
		merged.Duration = &v
	}
	if merged.Delay == nil {
		v := defaults.Delay
		merged.Delay = &v
	}
	if merged.Timing == nil {
		v := defaults.Timing
		merged.Timing = &v
	}
	return merged
}

// Layer rebuilds the ordered tuple from the resolved roles, emitting only
// present fields in the fixed order property, duration, delay, timing.
func (p Properties) Layer() Layer {
	var layer Layer
	for _, v := range []*Value{p.Property, p.Duration, p.Delay, p.Timing} {
		if v != nil {
			layer = append(layer, *v)
		}
	}
	return layer
}

// Equal reports field-wise equivalence of two property records.
func (p Properties) Equal(other Properties) bool {
	fields := [4][2]*Value{
		{p.Property, other.Property},
		{p.Duration, other.Duration},
		{p.Delay, other.Delay},
		{p.Timing, other.Timing},
	}
	for _, pair := range fields {
		a, b := pair[0], pair[1]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && !a.Equal(*b) {
			return false
		}
	}
	return true
}

func layerKey(layer Layer) string {
	parts := make([]string, len(layer))
	for i, v := range layer {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// maxCachedExtractions bounds the memo cache; layers are tiny so the cache
// just avoids re-walking the same tuple on every redraw.
const maxCachedExtractions = 256

type propertiesCache struct {
	mu      sync.Mutex
	entries map[string]Properties
}

var extractCache = &propertiesCache{entries: make(map[string]Properties)}

func (c *propertiesCache) get(key string) (Properties, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	props, ok := c.entries[key]
	return props, ok
}

func (c *propertiesCache) put(key string, props Properties) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= maxCachedExtractions {
		c.entries = make(map[string]Properties)
	}
	c.entries[key] = props
}
