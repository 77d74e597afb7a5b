package schema

import (
	"slices"

	"github.com/tidwall/gjson"
)

// field returns the value under key when v is an object.
func field(v gjson.Result, key string) gjson.Result {
	if !v.IsObject() {
		return gjson.Result{}
	}
	return v.Get(gjson.Escape(key))
}

// object returns v[key] when both v and v[key] are objects.
func object(v gjson.Result, key string) (gjson.Result, bool) {
	out := field(v, key)
	if !out.IsObject() {
		return gjson.Result{}, false
	}
	return out, true
}

// jsonObject accepts an object or a string holding a JSON object. Span
// exporters write nested payloads either way.
func jsonObject(v gjson.Result) (gjson.Result, bool) {
	if v.IsObject() {
		return v, true
	}
	if v.Type == gjson.String && gjson.Valid(v.Str) {
		parsed := gjson.Parse(v.Str)
		if parsed.IsObject() {
			return parsed, true
		}
	}
	return gjson.Result{}, false
}

func isAbsent(v gjson.Result) bool {
	return !v.Exists() || v.Type == gjson.Null
}

func optionalString(v gjson.Result) bool {
	return isAbsent(v) || v.Type == gjson.String
}

func stringList(v gjson.Result) ([]string, bool) {
	if !v.IsArray() {
		return nil, false
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			return nil, false
		}
		out = append(out, item.Str)
	}
	return out, true
}

// extra collects the keys of v that are not in known.
func extra(v gjson.Result, known ...string) map[string]any {
	var out map[string]any
	v.ForEach(func(key, value gjson.Result) bool {
		k := key.String()
		if slices.Contains(known, k) {
			return true
		}
		if out == nil {
			out = map[string]any{}
		}
		out[k] = value.Value()
		return true
	})
	return out
}
