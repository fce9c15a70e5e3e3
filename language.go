package cfmodels

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Language renders generated classes for one target language.
type Language interface {
	Name() string
	// Extension is the file extension without the leading dot.
	Extension() string
	TypeName(t TypeRef) string
	Render(w io.Writer, c *Class) error
}

type LanguageOptions struct {
	// GoModelPackage is the import path of the package holding the
	// SystemProperties, Asset and Location types used by Go output.
	GoModelPackage string
}

type languageFactory func(opts LanguageOptions) Language

var languages = map[string]languageFactory{
	"csharp": func(LanguageOptions) Language { return &CSharp{} },
	"go": func(opts LanguageOptions) Language {
		return &Go{ModelPackage: opts.GoModelPackage}
	},
	"graphql": func(LanguageOptions) Language { return &GraphQL{} },
}

var languageAliases = map[string]string{
	"cs":  "csharp",
	"c#":  "csharp",
	"gql": "graphql",
}

func NewLanguage(name string, opts LanguageOptions) (Language, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "csharp"
	}
	if alias, ok := languageAliases[key]; ok {
		key = alias
	}
	factory, ok := languages[key]
	if !ok {
		return nil, fmt.Errorf("unknown language %q (available: %s)", name, strings.Join(LanguageNames(), ", "))
	}
	return factory(opts), nil
}

func LanguageNames() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
