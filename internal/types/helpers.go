package types

import (
	"encoding/json"
	"fmt"
)

// StringPtr returns a pointer to the given string.
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to the given bool.
func BoolPtr(b bool) *bool {
	return &b
}

// Unreachable describes a value a closed enum switch should never see.
// Callers panic with it: panic(types.Unreachable(v)).
func Unreachable(v any) error {
	return fmt.Errorf("unreachable: unexpected value %#v", v)
}

// marshalWithExtra merges extension keys under the typed keys. Typed keys win
// on conflict.
func marshalWithExtra(known, extra map[string]any) ([]byte, error) {
	out := make(map[string]any, len(known)+len(extra))
	for k, v := range extra {
		out[k] = v
	}
	for k, v := range known {
		out[k] = v
	}
	return json.Marshal(out)
}

func remarshal(in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
