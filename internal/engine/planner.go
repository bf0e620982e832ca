package engine

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ldevran/grep-tui/internal/model"
)

// PlanDefinitions expands a bare identifier into the ordered set of regex
// sub-queries that find its definition sites in Haskell source.
//
// The first rune decides the shape of the plan: an uppercase letter means
// a type, class, constructor, or module name; anything else is treated as
// a value-level identifier. The query text is regex-quoted before
// interpolation so metacharacters in the identifier (backtick operators,
// primes are fine, but e.g. "<|>") search literally.
func PlanDefinitions(query string) (model.Plan, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	first, _ := utf8.DecodeRuneInString(query)
	q := regexp.QuoteMeta(query)

	if unicode.IsLetter(first) && unicode.IsUpper(first) {
		// Constructors appear either right after = as the first
		// alternative, or after | in a multi-constructor declaration.
		// Record-style constructors match the first form too.
		firstConstructor := fmt.Sprintf(`(data|newtype) .+\s* =\s* %s\s`, q)
		laterConstructor := fmt.Sprintf(`\|\s* %s\s`, q)

		return model.Plan{
			{Label: "Module", Pattern: fmt.Sprintf(`^module +(%s)\s`, q)},
			{Label: "Type definition", Pattern: fmt.Sprintf(`^(data|newtype|type)\s+%s(\s+[a-z]+)*\s+(=|where)\s`, q)},
			{Label: "Class definition", Pattern: fmt.Sprintf(`^class\s+([a-zA-Z\s.\(\),]+=>\s+)?%s(\s+[a-z]+)*\s+where\s`, q)},
			{Label: "Constructor", Pattern: fmt.Sprintf(`(%s)|(%s)`, firstConstructor, laterConstructor)},
		}, nil
	}

	return model.Plan{
		{Label: "Value type", Pattern: fmt.Sprintf(`^ *(%s)\s+::\s+.`, q)},
		{Label: "Value definition", Pattern: fmt.Sprintf(`^ *(%s)\s+[^=$]*\s=\s`, q)},
		{Label: "Record getter", Pattern: fmt.Sprintf(` +[{,] +(%s)\s+::\s+`, q)},
	}, nil
}
