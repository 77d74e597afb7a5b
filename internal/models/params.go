package models

import "github.com/n0madic/go-playground/internal/types"

// TransformInvocationParameters binds raw span parameters to the model's
// definitions. A pair is kept only when a definition matches its key by
// canonical or invocation name and that definition declares both an
// invocation name and an input field. Input order is preserved.
func TransformInvocationParameters(raw []types.RawInvocationParameter, definitions []types.InvocationParameter) []types.InvocationParameterInput {
	out := make([]types.InvocationParameterInput, 0, len(raw))
	for _, p := range raw {
		def, ok := findDefinition(p.Key, definitions)
		if !ok || def.InvocationInputField == "" || def.InvocationName == "" {
			continue
		}
		out = append(out, types.InvocationParameterInput{
			CanonicalName:  def.CanonicalName,
			InvocationName: def.InvocationName,
			Field:          def.InvocationInputField,
			Value:          p.Value,
		})
	}
	return out
}

// ConstrainToDefinition drops inputs that no definition supports. An input is
// supported when a definition shares its invocation name or its canonical
// name. Inputs matched by canonical name take the definition's invocation
// name, so a parameter renamed by another provider keeps its value.
func ConstrainToDefinition(inputs []types.InvocationParameterInput, definitions []types.InvocationParameter) []types.InvocationParameterInput {
	out := make([]types.InvocationParameterInput, 0, len(inputs))
	for _, in := range inputs {
		if !supported(in, definitions) {
			continue
		}
		if def, ok := byCanonicalName(in.CanonicalName, definitions); ok && def.InvocationName != "" {
			in.InvocationName = def.InvocationName
		}
		out = append(out, in)
	}
	return out
}

func findDefinition(key string, definitions []types.InvocationParameter) (types.InvocationParameter, bool) {
	for _, def := range definitions {
		if (def.CanonicalName != "" && def.CanonicalName == key) ||
			(def.InvocationName != "" && def.InvocationName == key) {
			return def, true
		}
	}
	return types.InvocationParameter{}, false
}

func supported(in types.InvocationParameterInput, definitions []types.InvocationParameter) bool {
	for _, def := range definitions {
		if def.InvocationName != "" && def.InvocationName == in.InvocationName {
			return true
		}
		if def.CanonicalName != "" && def.CanonicalName == in.CanonicalName {
			return true
		}
	}
	return false
}

func byCanonicalName(name string, definitions []types.InvocationParameter) (types.InvocationParameter, bool) {
	if name == "" {
		return types.InvocationParameter{}, false
	}
	for _, def := range definitions {
		if def.CanonicalName == name {
			return def, true
		}
	}
	return types.InvocationParameter{}, false
}
