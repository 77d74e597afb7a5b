package models

import (
	"strings"

	"github.com/n0madic/go-playground/internal/types"
)

// modelPrefixes lists the model name fragments that identify each provider.
var modelPrefixes = map[types.Provider][]string{
	types.ProviderOpenAI:      {"gpt", "o1"},
	types.ProviderAzureOpenAI: {},
	types.ProviderAnthropic:   {"claude"},
}

// ProviderFromModelName infers the provider of a model. A provider matches
// when any of its prefixes occurs anywhere in the name; providers are tried in
// types.Providers() order and the first match wins. Unknown names resolve to
// types.DefaultProvider.
func ProviderFromModelName(modelName string) types.Provider {
	for _, provider := range types.Providers() {
		for _, prefix := range modelPrefixes[provider] {
			if strings.Contains(modelName, prefix) {
				return provider
			}
		}
	}
	return types.DefaultProvider
}
