package css

import "strings"

// ToValue renders a single layer in canonical form: present fields only, in
// the fixed order property, duration, delay, timing, separated by single
// spaces. Text produced here always re-parses when every field that needs
// one carries a value.
func ToValue(layer Layer) string {
	ordered := Extract(layer).Layer()
	parts := make([]string, len(ordered))
	for i, v := range ordered {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// ToValueLayers renders a multi-layer transition value.
func ToValueLayers(layers []Layer) string {
	parts := make([]string, len(layers))
	for i, layer := range layers {
		parts[i] = ToValue(layer)
	}
	return strings.Join(parts, ", ")
}
