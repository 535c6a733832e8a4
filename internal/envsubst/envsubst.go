package envsubst

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var substRe = regexp.MustCompile(`\$?\$\{([^}]+)\}`)

// Replace substitutes ${KEY} placeholders in the text with values
// from the given map. A double dollar sign ($${KEY}) escapes the
// substitution. Placeholders with no matching key are replaced with
// an empty string and reported in a KeyError.
func Replace(text string, vars map[string]string) (string, error) {
	unknownKeys := make(map[string]bool)
	s := substRe.ReplaceAllStringFunc(text, func(match string) string {
		if strings.HasPrefix(match, "$$") {
			return match[1:]
		}

		key := strings.TrimSpace(match[2 : len(match)-1])
		v, ok := vars[key]
		if !ok {
			unknownKeys[key] = true
		}
		return v
	})

	if len(unknownKeys) == 0 {
		return s, nil
	}

	keys := make([]string, 0, len(unknownKeys))
	for key := range unknownKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return s, &KeyError{keys: keys}
}

type KeyError struct {
	keys []string
}

func (this *KeyError) MissingKeys() []string {
	return this.keys
}

func (this *KeyError) Error() string {
	return fmt.Sprintf(
		"unknown keys: %s",
		strings.Join(this.keys, ", "),
	)
}
