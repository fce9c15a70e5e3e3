package cfmodels

import (
	"encoding/json"
)

const (
	FieldTypeSymbol   = "Symbol"
	FieldTypeText     = "Text"
	FieldTypeInteger  = "Integer"
	FieldTypeDate     = "Date"
	FieldTypeNumber   = "Number"
	FieldTypeBoolean  = "Boolean"
	FieldTypeLocation = "Location"
	FieldTypeLink     = "Link"
	FieldTypeArray    = "Array"
	FieldTypeObject   = "Object"

	LinkTypeAsset = "Asset"
	LinkTypeEntry = "Entry"
)

type Sys struct {
	ID        string `json:"id,omitempty"`
	Type      string `json:"type,omitempty"`
	LinkType  string `json:"linkType,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Revision  int    `json:"revision,omitempty"`
}

type ContentTypes struct {
	Total int            `json:"total"`
	Limit int            `json:"limit"`
	Skip  int            `json:"skip"`
	Items []*ContentType `json:"items"`
}

type ContentType struct {
	Sys          *Sys                `json:"sys"`
	Name         string              `json:"name,omitempty"`
	Description  string              `json:"description,omitempty"`
	Fields       []*ContentTypeField `json:"fields,omitempty"`
	DisplayField string              `json:"displayField,omitempty"`
}

type ContentTypeField struct {
	ID          string              `json:"id,omitempty"`
	Name        string              `json:"name"`
	Type        string              `json:"type"`
	LinkType    string              `json:"linkType,omitempty"`
	Items       *FieldTypeArrayItem `json:"items,omitempty"`
	Required    bool                `json:"required,omitempty"`
	Localized   bool                `json:"localized,omitempty"`
	Disabled    bool                `json:"disabled,omitempty"`
	Omitted     bool                `json:"omitted,omitempty"`
	Validations []FieldValidation   `json:"validations,omitempty"`
}

type FieldTypeArrayItem struct {
	Type        string            `json:"type,omitempty"`
	Validations []FieldValidation `json:"validations,omitempty"`
	LinkType    string            `json:"linkType,omitempty"`
}

// FieldValidation keeps the only rule the generator reads. A nil
// LinkContentType means the validation is some other rule.
type FieldValidation struct {
	LinkContentType []string `json:"linkContentType,omitempty"`
}

func (ct *ContentType) id() string {
	if ct.Sys == nil {
		return ""
	}
	return ct.Sys.ID
}

func UnmarshalContentTypes(body []byte) (types *ContentTypes, err error) {
	types = &ContentTypes{}
	err = json.Unmarshal(body, types)
	return
}
