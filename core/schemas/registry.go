package schemas

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/leofalp/llmextract/core/extract"
)

// ErrUnknownSchema is returned by Lookup for names it does not know.
var ErrUnknownSchema = errors.New("unknown schema")

// SystemPrompt is sent with every structured-output request.
const SystemPrompt = "You are a helpful assistant. Answer only by calling the provided function " +
	"with arguments that match its JSON schema."

var registry = map[string]*extract.Description{
	"movie":  Movie,
	"recipe": Recipe,
}

// Lookup resolves a description by short name ("movie", "recipe") or by
// record name ("movie_details"). Matching ignores case.
func Lookup(name string) (*extract.Description, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := registry[key]; ok {
		return d, nil
	}
	for _, d := range registry {
		if d.Name() == key {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownSchema, name, strings.Join(Names(), ", "))
}

// Names returns the short names accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
