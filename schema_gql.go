package cfmodels

import (
	"fmt"
	"io"
	"text/template"
)

const gqlTemplate = `type {{ .Name }} implements Entry {
  sys: EntrySys!
  {{- range .Properties }}
  {{ .FieldID }}: {{ fieldType . }}
  {{- end }}
}
`

// GraphQL emits one type definition per content type.
type GraphQL struct{}

func (l *GraphQL) Name() string      { return "graphql" }
func (l *GraphQL) Extension() string { return "graphql" }

func (l *GraphQL) TypeName(t TypeRef) string {
	switch t.Kind {
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Boolean"
	case KindAsset:
		return "Asset"
	case KindEntry:
		return t.Name
	case KindList:
		return fmt.Sprintf("[%s]", l.TypeName(*t.Elem))
	default:
		return "String"
	}
}

func (l *GraphQL) Render(w io.Writer, c *Class) error {
	tmpl, err := template.New("graphql").Funcs(template.FuncMap{
		"fieldType": func(p Property) string {
			return isRequired(p.Required, l.TypeName(p.Type))
		},
	}).Parse(gqlTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, c)
}

func isRequired(r bool, s string) string {
	if r {
		s += "!"
	}
	return s
}
