// Package pattern reads plain-text Life patterns into rows the model can ingest.
//
// A pattern is a sequence of lines. Lines starting with '!' or '#' are comments.
// Every other line is a row of cell glyphs, with whitespace ignored and a blank
// line standing for an empty row.
package pattern

import (
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// DefaultAliveRunes are the glyphs read as live cells when none are configured.
const DefaultAliveRunes = "1"

// ErrMalformedPattern is returned when a pattern text does not follow the grammar.
var ErrMalformedPattern = errors.New("pattern: malformed pattern text")

type patternFile struct {
	Lines []*patternLine `parser:"@@*"`
}

type patternLine struct {
	Comment string   `parser:"(  @Comment"`
	Glyphs  []string `parser:" | @Glyph+ )?"`
	EOL     string   `parser:"@EOL"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `[!#][^\n]*`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "whitespace", Pattern: `[ \t\r]+`},
	{Name: "Glyph", Pattern: `[^\s]`},
})

var patternParser = participle.MustBuild[patternFile](
	participle.Lexer(patternLexer),
)

// Parse turns pattern text into rows of '1' (alive) and '0' (dead).
// Runes listed in aliveRunes are alive; everything else is dead.
func Parse(name, text, aliveRunes string) ([]string, error) {
	if aliveRunes == "" {
		aliveRunes = DefaultAliveRunes
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	file, err := patternParser.ParseString(name, text)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedPattern, "[Parse] %s: %v", name, err)
	}

	rows := make([]string, 0, len(file.Lines))
	for _, line := range file.Lines {
		if line.Comment != "" {
			continue
		}
		var sb strings.Builder
		for _, glyph := range line.Glyphs {
			if strings.ContainsAny(glyph, aliveRunes) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		rows = append(rows, sb.String())
	}
	return rows, nil
}

// ParseFile reads and parses a pattern file.
func ParseFile(path, aliveRunes string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[ParseFile] failed to read file: %+v", path)
	}
	return Parse(path, string(data), aliveRunes)
}
