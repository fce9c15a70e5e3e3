package cfmodels

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureSchema(t *testing.T) *Schema {
	t.Helper()
	cts, err := LoadContentTypes("testdata/content_types.json")
	require.NoError(t, err)
	return NewSchema(cts.Items)
}

func fixtureClass(t *testing.T, s *Schema, id string, namespace string) *Class {
	t.Helper()
	ct, ok := s.Lookup(id)
	require.True(t, ok, "content type %s", id)
	return s.NewClass(namespace, ct)
}

func render(t *testing.T, l Language, c *Class) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, l.Render(&buf, c))
	return buf.String()
}

func TestNewLanguage(t *testing.T) {
	for name, want := range map[string]string{
		"":        "csharp",
		"csharp":  "csharp",
		"CS":      "csharp",
		"c#":      "csharp",
		"go":      "go",
		"graphql": "graphql",
		"gql":     "graphql",
	} {
		l, err := NewLanguage(name, LanguageOptions{})
		require.NoError(t, err, name)
		assert.Equal(t, want, l.Name())
	}

	_, err := NewLanguage("cobol", LanguageOptions{})
	assert.ErrorContains(t, err, "unknown language")
	assert.Equal(t, []string{"csharp", "go", "graphql"}, LanguageNames())
}

func TestCSharpRender(t *testing.T) {
	s := fixtureSchema(t)

	category := render(t, &CSharp{}, fixtureClass(t, s, "category", ""))
	assert.Equal(t, `using System;
using System.Collections.Generic;
using System.Linq;
using System.Text;
using System.Threading.Tasks;
using Contentful.Core.Models;

namespace Replace.Me.NameSpace
{
    public class Category
    {
        public SystemProperties Sys { get; set; }
        public string Title { get; set; }
        public Asset Icon { get; set; }
        public string CategoryDescription { get; set; }
    }
}

`, category)

	product := render(t, &CSharp{}, fixtureClass(t, s, "product", "Acme.Models"))
	assert.Contains(t, product, "namespace Acme.Models\n{")
	assert.Contains(t, product, "        public Category Cat { get; set; }\n")
	assert.Contains(t, product, "        public List<string> Tags { get; set; }\n")
	assert.Contains(t, product, "        public List<Asset> Images { get; set; }\n")
	assert.Contains(t, product, "        public float Price { get; set; }\n")
	assert.Contains(t, product, "        public DateTime ReleasedAt { get; set; }\n")
	assert.Contains(t, product, "        public Location Warehouse { get; set; }\n")
	assert.Contains(t, product, "        public object Meta { get; set; }\n")
}

func TestCSharpRenderWithoutFields(t *testing.T) {
	out := render(t, &CSharp{}, &Class{Namespace: "N", Name: "Empty"})
	assert.Contains(t, out, "    public class Empty\n    {\n        public SystemProperties Sys { get; set; }\n    }\n}\n\n")
	assert.True(t, strings.HasSuffix(out, "    }\n}\n\n"))
}

func TestCSharpTypeName(t *testing.T) {
	l := &CSharp{}
	assert.Equal(t, "List<object>", l.TypeName(ListOf(ObjectType)))
	assert.Equal(t, "List<Category>", l.TypeName(ListOf(EntryType("Category"))))
	assert.Equal(t, "bool", l.TypeName(BoolType))
	assert.Equal(t, "int", l.TypeName(IntType))
}

func TestGraphQLRender(t *testing.T) {
	s := fixtureSchema(t)

	out := render(t, &GraphQL{}, fixtureClass(t, s, "category", ""))
	assert.Equal(t, `type Category implements Entry {
  sys: EntrySys!
  Title: String!
  Icon: Asset
  CategoryDescription: String
}
`, out)

	out = render(t, &GraphQL{}, fixtureClass(t, s, "product", ""))
	assert.Contains(t, out, "  Name: String!\n")
	assert.Contains(t, out, "  Cat: Category\n")
	assert.Contains(t, out, "  Tags: [String]\n")
	assert.Contains(t, out, "  Images: [Asset]\n")
	assert.Contains(t, out, "  Quantity: Int\n")
	assert.Contains(t, out, "  Available: Boolean\n")
}

func goStructFields(t *testing.T, src string, typeName string) (string, map[string]string) {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, parser.ParseComments)
	require.NoError(t, err, src)

	fields := make(map[string]string)
	ast.Inspect(f, func(n ast.Node) bool {
		ts, ok := n.(*ast.TypeSpec)
		if !ok || ts.Name.Name != typeName {
			return true
		}
		st, ok := ts.Type.(*ast.StructType)
		require.True(t, ok)
		for _, field := range st.Fields.List {
			for _, name := range field.Names {
				fields[name.Name] = types.ExprString(field.Type)
			}
		}
		return false
	})
	return f.Name.Name, fields
}

func TestGoRender(t *testing.T) {
	s := fixtureSchema(t)

	src := render(t, &Go{}, fixtureClass(t, s, "product", ""))
	assert.Contains(t, src, "// Code generated by cfmodels. DO NOT EDIT.")
	assert.Contains(t, src, `"github.com/moonwalker/cfmodels/model"`)
	assert.Contains(t, src, `// Product is generated from the "product" content type.`)
	assert.Contains(t, src, "`json:\"Cat,omitempty\"`")

	pkg, fields := goStructFields(t, src, "Product")
	assert.Equal(t, "replacemenamespace", pkg)
	assert.Equal(t, map[string]string{
		"Sys":        "model.SystemProperties",
		"Name":       "string",
		"Cat":        "*Category",
		"Tags":       "[]string",
		"Images":     "[]*model.Asset",
		"Price":      "float64",
		"Quantity":   "int",
		"Available":  "bool",
		"ReleasedAt": "time.Time",
		"Warehouse":  "model.Location",
		"Meta":       "interface{}",
	}, fields)
}

func TestGoRenderCustomModelPackage(t *testing.T) {
	s := fixtureSchema(t)
	l := &Go{ModelPackage: "example.com/shop/contentful"}

	src := render(t, l, fixtureClass(t, s, "category", "example.com/shop/catalog"))
	pkg, fields := goStructFields(t, src, "Category")
	assert.Equal(t, "catalog", pkg)
	assert.Equal(t, "*contentful.Asset", fields["Icon"])
	assert.Equal(t, "*contentful.Asset", l.TypeName(AssetType))
	assert.Contains(t, src, "// Categories can be applied to Products.")
}

func TestGoPackageName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Replace.Me.NameSpace", "replacemenamespace"},
		{"github.com/acme/models", "models"},
		{"Café.Models", "cafemodels"},
		{"my_models", "mymodels"},
		{"123", "models"},
		{"", "models"},
		{"Type", "models"},
		{"Go", "models"},
		{"Acme.Select", "acmeselect"},
		{"example.com/shop/map", "models"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GoPackageName(tt.input), tt.input)
	}
}

func TestGoRenderKeywordNamespace(t *testing.T) {
	s := fixtureSchema(t)
	for _, ns := range []string{"Type", "Go", "Default", "Func", "Map", "Select"} {
		src := render(t, &Go{}, fixtureClass(t, s, "category", ns))
		pkg, _ := goStructFields(t, src, "Category")
		assert.Equal(t, "models", pkg, ns)
	}
}

func TestGoRenderFieldNameCollisions(t *testing.T) {
	c := &Class{
		Namespace: "Acme",
		Name:      "Page",
		Properties: []Property{
			{Name: "Sys", FieldID: "sys", Type: StringType},
			{Name: "Title", FieldID: "title", Type: StringType},
			{Name: "Title", FieldID: "Title", Type: IntType},
			{Name: "", FieldID: "-", Type: BoolType},
			{Name: "1st", FieldID: "1st", Type: FloatType},
		},
	}

	src := render(t, &Go{}, c)
	_, fields := goStructFields(t, src, "Page")
	assert.Equal(t, map[string]string{
		"Sys":      "model.SystemProperties",
		"Sys2":     "string",
		"Title":    "string",
		"Title2":   "int",
		"Field":    "bool",
		"Field1st": "float64",
	}, fields)
	assert.Contains(t, src, "`json:\"sys,omitempty\"`")
	assert.Contains(t, src, "`json:\"Title,omitempty\"`")
}

func TestGoTypeName(t *testing.T) {
	l := &Go{}
	tests := []struct {
		ref  TypeRef
		want string
	}{
		{StringType, "string"},
		{IntType, "int"},
		{FloatType, "float64"},
		{BoolType, "bool"},
		{DateTimeType, "time.Time"},
		{LocationType, "model.Location"},
		{AssetType, "*model.Asset"},
		{EntryType("Category"), "*Category"},
		{ListOf(AssetType), "[]*model.Asset"},
		{ListOf(ObjectType), "[]interface{}"},
		{ObjectType, "interface{}"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.TypeName(tt.ref), tt.ref.String())
	}
}
