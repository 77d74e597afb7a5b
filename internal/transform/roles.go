package transform

import "github.com/n0madic/go-playground/internal/types"

// chatRoleAliases lists, per canonical role, the role strings span exporters
// use for it. Matching is case-sensitive.
var chatRoleAliases = []struct {
	role    types.ChatRole
	aliases []string
}{
	{types.ChatRoleUser, []string{"user", "human"}},
	{types.ChatRoleAI, []string{"assistant", "bot", "ai"}},
	{types.ChatRoleSystem, []string{"system"}},
	{types.ChatRoleTool, []string{"tool"}},
}

// NormalizeRole maps a free-form role to a canonical chat role, falling back
// to types.DefaultChatRole.
func NormalizeRole(role string) types.ChatRole {
	if types.IsChatRole(role) {
		return types.ChatRole(role)
	}
	for _, entry := range chatRoleAliases {
		for _, alias := range entry.aliases {
			if alias == role {
				return entry.role
			}
		}
	}
	return types.DefaultChatRole
}
