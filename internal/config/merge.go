package config

// MergeMaps recursively merges overrides into base and returns base.
// Nested maps merge key by key; a scalar meeting a list is appended to
// it; everything else is replaced by the override value.
func MergeMaps(base, overrides map[string]any) map[string]any {
	if base == nil {
		base = make(map[string]any, len(overrides))
	}
	for k, ov := range overrides {
		bv, exists := base[k]
		if !exists {
			base[k] = ov
			continue
		}

		bm, bIsMap := bv.(map[string]any)
		om, oIsMap := ov.(map[string]any)
		if bIsMap && oIsMap {
			base[k] = MergeMaps(bm, om)
			continue
		}

		bl, bIsList := bv.([]any)
		ol, oIsList := ov.([]any)
		switch {
		case oIsList && !bIsList:
			base[k] = append([]any{bv}, ol...)
		case bIsList && !oIsList:
			base[k] = append(bl, ov)
		default:
			base[k] = ov
		}
	}
	return base
}
