package cfmodels

import "fmt"

type TypeKind int

const (
	KindObject TypeKind = iota
	KindString
	KindInt
	KindDateTime
	KindFloat
	KindBool
	KindLocation
	KindAsset
	KindEntry
	KindList
)

// TypeRef is a resolved field type, independent of the output language.
type TypeRef struct {
	Kind TypeKind
	// Name is the class name of the referenced content type for KindEntry.
	Name string
	// Elem is the item type for KindList.
	Elem *TypeRef
}

var (
	ObjectType   = TypeRef{Kind: KindObject}
	StringType   = TypeRef{Kind: KindString}
	IntType      = TypeRef{Kind: KindInt}
	DateTimeType = TypeRef{Kind: KindDateTime}
	FloatType    = TypeRef{Kind: KindFloat}
	BoolType     = TypeRef{Kind: KindBool}
	LocationType = TypeRef{Kind: KindLocation}
	AssetType    = TypeRef{Kind: KindAsset}
)

func EntryType(name string) TypeRef {
	return TypeRef{Kind: KindEntry, Name: name}
}

func ListOf(elem TypeRef) TypeRef {
	return TypeRef{Kind: KindList, Elem: &elem}
}

func (t TypeRef) String() string {
	switch t.Kind {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindDateTime:
		return "datetime"
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
		return fmt.Sprintf("list<%s>", t.Elem)
	default:
		return "object"
	}
}

// Schema is the fetched content model. It is built once after the fetch
// completed and only read afterwards.
type Schema struct {
	types []*ContentType
	byID  map[string]*ContentType
}

func NewSchema(types []*ContentType) *Schema {
	s := &Schema{
		types: types,
		byID:  make(map[string]*ContentType, len(types)),
	}
	for _, t := range types {
		id := t.id()
		if _, ok := s.byID[id]; !ok {
			s.byID[id] = t
		}
	}
	return s
}

func (s *Schema) Types() []*ContentType {
	return s.types
}

func (s *Schema) Lookup(id string) (*ContentType, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// ResolveType maps a field to its type. Unknown or ambiguous shapes resolve
// to ObjectType.
func (s *Schema) ResolveType(field *ContentTypeField) TypeRef {
	switch field.Type {
	case FieldTypeSymbol, FieldTypeText:
		return StringType
	case FieldTypeInteger:
		return IntType
	case FieldTypeDate:
		return DateTimeType
	case FieldTypeNumber:
		return FloatType
	case FieldTypeBoolean:
		return BoolType
	case FieldTypeLocation:
		return LocationType
	case FieldTypeLink:
		return s.resolveLink(field)
	case FieldTypeArray:
		return s.resolveArray(field)
	}
	return ObjectType
}

func (s *Schema) resolveLink(field *ContentTypeField) TypeRef {
	switch field.LinkType {
	case LinkTypeAsset:
		return AssetType
	case LinkTypeEntry:
		if t, ok := s.linkedEntry(field.Validations); ok {
			return t
		}
	}
	return ObjectType
}

// resolveArray keeps the historical fallback: an array of entries without a
// single known target is a list of objects, while any other unknown item
// shape is a plain object.
func (s *Schema) resolveArray(field *ContentTypeField) TypeRef {
	items := field.Items
	if items == nil {
		return ObjectType
	}
	if items.LinkType == LinkTypeEntry {
		if t, ok := s.linkedEntry(items.Validations); ok {
			return ListOf(t)
		}
		return ListOf(ObjectType)
	}
	if items.LinkType == LinkTypeAsset {
		return ListOf(AssetType)
	}
	if items.Type == FieldTypeSymbol {
		return ListOf(StringType)
	}
	return ObjectType
}

func (s *Schema) linkedEntry(validations []FieldValidation) (TypeRef, bool) {
	for _, v := range validations {
		if v.LinkContentType == nil {
			continue
		}
		if len(v.LinkContentType) != 1 {
			return ObjectType, false
		}
		t, ok := s.Lookup(v.LinkContentType[0])
		if !ok {
			return ObjectType, false
		}
		name := ClassName(t)
		if name == "" {
			return ObjectType, false
		}
		return EntryType(name), true
	}
	return ObjectType, false
}
