package playground

import (
	"github.com/n0madic/go-playground/internal/template"
	"github.com/n0madic/go-playground/internal/types"
)

// VariablesFromInstances returns the distinct template variables used by the
// instances in order of first appearance. Chat messages without content are
// skipped.
func VariablesFromInstances(instances []types.PlaygroundInstance, lang template.Language) []string {
	seen := make(map[string]struct{})
	out := []string{}
	add := func(text string) {
		for _, v := range template.ExtractVariables(lang, text) {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	for _, inst := range instances {
		switch inst.Template.Kind {
		case types.TemplateChat:
			for _, m := range inst.Template.Messages {
				if m.Content != nil {
					add(*m.Content)
				}
			}
		case types.TemplateTextCompletion:
			add(inst.Template.Prompt)
		default:
			panic(types.Unreachable(inst.Template.Kind))
		}
	}
	return out
}
