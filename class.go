package cfmodels

const DefaultNamespace = "Replace.Me.NameSpace"

type Property struct {
	Name     string
	FieldID  string
	Type     TypeRef
	Required bool
}

// Class is the generated unit for one content type.
type Class struct {
	Namespace     string
	Name          string
	ContentTypeID string
	Description   string
	Properties    []Property
}

// ClassName is the class name generated for a content type. Names that
// sanitize to nothing fall back to the content type id.
func ClassName(ct *ContentType) string {
	if name := FormatClassName(ct.Name); name != "" {
		return name
	}
	return FormatClassName(ct.id())
}

func fileBaseName(ct *ContentType) string {
	if name := FormatFileName(ct.Name); name != "" {
		return name
	}
	return FormatFileName(ct.id())
}

func (s *Schema) NewClass(namespace string, ct *ContentType) *Class {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	class := &Class{
		Namespace:     namespace,
		Name:          ClassName(ct),
		ContentTypeID: ct.id(),
		Description:   ct.Description,
		Properties:    make([]Property, 0, len(ct.Fields)),
	}

	for _, f := range ct.Fields {
		class.Properties = append(class.Properties, Property{
			Name:     FormatClassName(f.ID),
			FieldID:  f.ID,
			Type:     s.ResolveType(f),
			Required: f.Required,
		})
	}

	return class
}
