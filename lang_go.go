package cfmodels

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/dave/jennifer/jen"
	"github.com/gosimple/slug"
)

const (
	DefaultGoModelPackage = "github.com/moonwalker/cfmodels/model"
	defaultGoPackageName  = "models"
)

// Go emits one struct per content type. Links are pointers so that content
// types may reference themselves.
type Go struct {
	ModelPackage string
}

func (l *Go) Name() string      { return "go" }
func (l *Go) Extension() string { return "go" }

func (l *Go) modelPackage() string {
	if l.ModelPackage != "" {
		return l.ModelPackage
	}
	return DefaultGoModelPackage
}

// TypeName is the Go type expression used for t, qualified with the
// default alias of the model package.
func (l *Go) TypeName(t TypeRef) string {
	return l.goType(t).GoString()
}

func (l *Go) goType(t TypeRef) *jen.Statement {
	switch t.Kind {
	case KindString:
		return jen.String()
	case KindInt:
		return jen.Int()
	case KindDateTime:
		return jen.Qual("time", "Time")
	case KindFloat:
		return jen.Float64()
	case KindBool:
		return jen.Bool()
	case KindLocation:
		return jen.Qual(l.modelPackage(), "Location")
	case KindAsset:
		return jen.Op("*").Qual(l.modelPackage(), "Asset")
	case KindEntry:
		return jen.Op("*").Id(t.Name)
	case KindList:
		return jen.Index().Add(l.goType(*t.Elem))
	default:
		return jen.Interface()
	}
}

func (l *Go) Render(w io.Writer, c *Class) error {
	f := jen.NewFile(GoPackageName(c.Namespace))
	f.HeaderComment("Code generated by cfmodels. DO NOT EDIT.")

	fields := make([]jen.Code, 0, len(c.Properties)+1)
	fields = append(fields, jen.Id("Sys").Qual(l.modelPackage(), "SystemProperties").Tag(map[string]string{"json": "sys"}))
	for i, name := range goFieldNames(c.Properties) {
		p := c.Properties[i]
		fields = append(fields, jen.Id(name).Add(l.goType(p.Type)).Tag(map[string]string{"json": p.FieldID + ",omitempty"}))
	}

	f.Comment(fmt.Sprintf("%s is generated from the %q content type.", c.Name, c.ContentTypeID))
	if c.Description != "" {
		f.Comment(strings.Join(strings.Fields(c.Description), " "))
	}
	f.Type().Id(c.Name).Struct(fields...)

	return f.Render(w)
}

// goFieldNames returns one exported, unique struct field name per property.
// Sys is taken by the system properties; repeats get a numeric suffix.
func goFieldNames(props []Property) []string {
	used := map[string]bool{"Sys": true}
	names := make([]string, len(props))
	for i, p := range props {
		base := p.Name
		if base == "" || !unicode.IsLetter(rune(base[0])) {
			base = "Field" + base
		}
		name := base
		for n := 2; used[name]; n++ {
			name = fmt.Sprintf("%s%d", base, n)
		}
		used[name] = true
		names[i] = name
	}
	return names
}

var packageNameReplacer = strings.NewReplacer("-", "", "_", "")

// GoPackageName derives a package name from a namespace such as
// "Acme.Web.Models" or an import path.
func GoPackageName(namespace string) string {
	if i := strings.LastIndex(namespace, "/"); i >= 0 {
		namespace = namespace[i+1:]
	}
	name := packageNameReplacer.Replace(slug.Make(namespace))
	if name == "" || !unicode.IsLetter(rune(name[0])) || jen.IsReservedWord(name) {
		return defaultGoPackageName
	}
	return name
}
