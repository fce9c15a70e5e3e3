package cfmodels

import (
	"encoding/json"
	"fmt"
	"os"
)

type spaceExport struct {
	ContentTypes []*ContentType `json:"contentTypes"`
	Items        []*ContentType `json:"items"`
}

// LoadContentTypes reads a content model from disk. Both the body of a
// content_types API response and a `contentful space export` file are
// accepted.
func LoadContentTypes(path string) (*ContentTypes, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var export spaceExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	items := export.Items
	if len(items) == 0 {
		items = export.ContentTypes
	}
	if items == nil {
		items = make([]*ContentType, 0)
	}

	return &ContentTypes{
		Total: len(items),
		Limit: len(items),
		Items: items,
	}, nil
}
