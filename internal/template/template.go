// Package template extracts variable names from prompt templates.
package template

import (
	"fmt"
	"strings"
)

// Language is a template syntax.
type Language string

const (
	Mustache Language = "MUSTACHE"
	FString  Language = "F_STRING"
	None     Language = "NONE"
)

// ParseLanguage maps a language name, case-insensitively, to a Language.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToUpper(strings.TrimSpace(s))) {
	case Mustache:
		return Mustache, nil
	case FString:
		return FString, nil
	case None:
		return None, nil
	}
	return "", fmt.Errorf("unknown template language %q", s)
}

// ExtractVariables returns the distinct variable names of text in order of
// first appearance.
func ExtractVariables(lang Language, text string) []string {
	switch lang {
	case Mustache:
		return mustacheVariables(text)
	case FString:
		return fStringVariables(text)
	case None:
		return nil
	default:
		panic(fmt.Sprintf("unreachable: unexpected template language %q", lang))
	}
}

// mustacheVariables finds {{ name }} tags. A backslash before the opening
// braces escapes the tag.
func mustacheVariables(text string) []string {
	var vars variableSet
	for i := 0; i < len(text); {
		switch {
		case text[i] == '\\' && strings.HasPrefix(text[i+1:], "{{"):
			i += 3
		case strings.HasPrefix(text[i:], "{{"):
			end := strings.Index(text[i+2:], "}}")
			if end < 0 {
				return vars.list
			}
			vars.add(text[i+2 : i+2+end])
			i += end + 4
		default:
			i++
		}
	}
	return vars.list
}

// fStringVariables finds {name} fields. Doubled braces are literals.
func fStringVariables(text string) []string {
	var vars variableSet
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "{{"), strings.HasPrefix(text[i:], "}}"):
			i += 2
		case text[i] == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				return vars.list
			}
			vars.add(text[i+1 : i+1+end])
			i += end + 2
		default:
			i++
		}
	}
	return vars.list
}

type variableSet struct {
	seen map[string]bool
	list []string
}

func (s *variableSet) add(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	if s.seen == nil {
		s.seen = map[string]bool{}
	}
	if s.seen[name] {
		return
	}
	s.seen[name] = true
	s.list = append(s.list, name)
}
