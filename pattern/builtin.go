package pattern

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBuiltin is loaded when no pattern is configured.
const DefaultBuiltin = "pulsar"

// ErrUnknownBuiltin is returned for names with no embedded pattern.
var ErrUnknownBuiltin = errors.New("pattern: unknown builtin pattern")

//go:embed builtin/*.txt
var builtins embed.FS

// Builtin parses one of the embedded patterns.
func Builtin(name string) ([]string, error) {
	data, err := builtins.ReadFile(path.Join("builtin", name+".txt"))
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownBuiltin, "[Builtin] %q (have %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	return Parse(name, string(data), DefaultAliveRunes)
}

// BuiltinNames lists the embedded patterns in alphabetical order.
func BuiltinNames() []string {
	entries, err := builtins.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}
