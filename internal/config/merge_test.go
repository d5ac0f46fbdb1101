package config

import (
	"reflect"
	"testing"
)

func TestMergeMaps(t *testing.T) {
	tests := []struct {
		name      string
		base      map[string]any
		overrides map[string]any
		want      map[string]any
	}{
		{
			name:      "nil_base",
			base:      nil,
			overrides: map[string]any{"a": 1},
			want:      map[string]any{"a": 1},
		},
		{
			name:      "scalar_replaced",
			base:      map[string]any{"a": 1},
			overrides: map[string]any{"a": 2},
			want:      map[string]any{"a": 2},
		},
		{
			name:      "new_key_added",
			base:      map[string]any{"a": 1},
			overrides: map[string]any{"b": 2},
			want:      map[string]any{"a": 1, "b": 2},
		},
		{
			name: "nested_maps_merge",
			base: map[string]any{
				"global": map[string]any{"x": 1, "y": 2},
			},
			overrides: map[string]any{
				"global": map[string]any{"y": 3, "z": 4},
			},
			want: map[string]any{
				"global": map[string]any{"x": 1, "y": 3, "z": 4},
			},
		},
		{
			name:      "list_override_appends_to_scalar",
			base:      map[string]any{"a": 1},
			overrides: map[string]any{"a": []any{2, 3}},
			want:      map[string]any{"a": []any{1, 2, 3}},
		},
		{
			name:      "scalar_override_appends_to_list",
			base:      map[string]any{"a": []any{1, 2}},
			overrides: map[string]any{"a": 3},
			want:      map[string]any{"a": []any{1, 2, 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeMaps(tt.base, tt.overrides)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeMaps() = %v, want %v", got, tt.want)
			}
		})
	}
}
