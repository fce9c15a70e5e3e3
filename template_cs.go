package cfmodels

import (
	"fmt"
	"io"
	"text/template"
)

const csharpTemplate = `using System;
using System.Collections.Generic;
using System.Linq;
using System.Text;
using System.Threading.Tasks;
using Contentful.Core.Models;

namespace {{ .Namespace }}
{
    public class {{ .Name }}
    {
        public SystemProperties Sys { get; set; }
{{- range .Properties }}
        public {{ typeName .Type }} {{ .Name }} { get; set; }
{{- end }}
    }
}

`

// CSharp emits classes for the Contentful .NET SDK.
type CSharp struct{}

func (l *CSharp) Name() string      { return "csharp" }
func (l *CSharp) Extension() string { return "cs" }

func (l *CSharp) TypeName(t TypeRef) string {
	switch t.Kind {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDateTime:
		return "DateTime"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindLocation:
		return "Location"
	case KindAsset:
		return "Asset"
	case KindEntry:
		return t.Name
	case KindList:
		return fmt.Sprintf("List<%s>", l.TypeName(*t.Elem))
	default:
		return "object"
	}
}

func (l *CSharp) Render(w io.Writer, c *Class) error {
	tmpl, err := template.New("csharp").Funcs(template.FuncMap{
		"typeName": l.TypeName,
	}).Parse(csharpTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, c)
}
