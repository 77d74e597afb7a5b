package playground

import (
	"github.com/n0madic/go-playground/internal/ids"
	"github.com/n0madic/go-playground/internal/types"
)

// DefaultModelName is the model a fresh instance starts with.
const DefaultModelName = "gpt-4o"

// NewInstance returns a fresh default playground instance.
func NewInstance() types.PlaygroundInstance {
	return types.PlaygroundInstance{
		ID: ids.NewInstanceID(),
		Model: types.ModelConfig{
			ModelName:            DefaultModelName,
			Provider:             types.DefaultProvider,
			InvocationParameters: []types.InvocationParameterInput{},
		},
		Template: types.ChatTemplate([]types.ChatMessage{
			{ID: ids.NewMessageID(), Role: types.ChatRoleSystem, Content: types.StringPtr("You are a chatbot")},
			{ID: ids.NewMessageID(), Role: types.ChatRoleUser, Content: types.StringPtr("{{question}}")},
		}),
		Tools:      []types.Tool{},
		ToolChoice: "auto",
		Input:      types.InstanceInput{VariablesValueCache: map[string]string{}},
	}
}
