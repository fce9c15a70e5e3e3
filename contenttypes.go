package cfmodels

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

const queryLimit = 1000

type ContentTypesService service

func (s *ContentTypesService) Get(ctx context.Context, query url.Values) ([]byte, error) {
	path := fmt.Sprintf(pathContentTypes, s.client.Options.SpaceID, s.client.environment())
	return s.client.get(ctx, path, query)
}

// GetTypes pages through the content_types endpoint and returns every type
// of the space environment in API order.
func (s *ContentTypesService) GetTypes(ctx context.Context) (*ContentTypes, error) {
	all := &ContentTypes{
		Items: make([]*ContentType, 0),
	}

	skip := 0
	for {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(queryLimit))
		query.Set("skip", strconv.Itoa(skip))

		data, err := s.Get(ctx, query)
		if err != nil {
			return nil, err
		}

		page, err := UnmarshalContentTypes(data)
		if err != nil {
			return nil, fmt.Errorf("decoding content types: %w", err)
		}

		all.Items = append(all.Items, page.Items...)
		all.Total = page.Total
		skip += len(page.Items)

		if len(page.Items) == 0 || skip >= page.Total {
			break
		}
	}

	all.Limit = len(all.Items)
	return all, nil
}
