package cfmodels

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewTLSServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient(&ClientOptions{
		ApiToken:   "token",
		SpaceID:    "space",
		ApiHost:    strings.TrimPrefix(srv.URL, "https://"),
		HTTPClient: srv.Client(),
	})
	return c, srv
}

func TestGetTypesPaginates(t *testing.T) {
	all := []string{"a", "b", "c"}
	var requests atomic.Int32

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/spaces/space/environments/master/content_types", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		assert.Equal(t, "1000", r.URL.Query().Get("limit"))

		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		end := skip + 2
		if end > len(all) {
			end = len(all)
		}
		page := ContentTypes{Total: len(all), Skip: skip, Limit: 2}
		for _, id := range all[skip:end] {
			page.Items = append(page.Items, &ContentType{Sys: &Sys{ID: id}, Name: strings.ToUpper(id)})
		}
		assert.NoError(t, json.NewEncoder(w).Encode(page))
	})

	var hooked int
	c.AfterRequest = func(c *Client, req *http.Request, elapsed time.Duration) {
		hooked++
	}

	types, err := c.ContentTypes.GetTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types.Items, 3)
	assert.Equal(t, 3, types.Total)
	for i, id := range all {
		assert.Equal(t, id, types.Items[i].Sys.ID)
	}
	assert.Equal(t, int32(2), requests.Load())
	assert.Equal(t, 2, hooked)
}

func TestGetTypesEnvironment(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spaces/space/environments/staging/content_types", r.URL.Path)
		w.Write([]byte(`{"total":0,"items":[]}`))
	})
	c.Options.EnvironmentID = "staging"

	types, err := c.ContentTypes.GetTypes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, types.Items)
}

func TestGetTypesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Contentful-Request-Id", "header-id")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{
			"sys": {"type": "Error", "id": "AccessTokenInvalid"},
			"message": "The access token you sent could not be found or is invalid.",
			"requestId": "body-id"
		}`))
	})

	_, err := c.ContentTypes.GetTypes(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "AccessTokenInvalid", apiErr.ID)
	assert.Equal(t, "body-id", apiErr.RequestID)
	assert.Equal(t, "The access token you sent could not be found or is invalid.", apiErr.Message)
	assert.Equal(t, "contentful: 401 AccessTokenInvalid: The access token you sent could not be found or is invalid.", apiErr.Error())
}

func TestGetTypesAPIErrorDetails(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{
			"sys": {"type": "Error", "id": "InvalidQuery"},
			"message": "The query you sent was invalid.",
			"details": {"errors": [
				{"name": "unknown", "path": ["limit"], "details": "The path \"limit\" is not recognized"}
			]}
		}`))
	})

	_, err := c.ContentTypes.GetTypes(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Len(t, apiErr.Details, 1)
	assert.Equal(t, "unknown", apiErr.Details[0].Name)
	assert.Equal(t, []string{`unknown path=[limit] The path "limit" is not recognized`}, apiErr.DetailList())
}

func TestGetTypesNonJSONError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Contentful-Request-Id", "header-id")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.ContentTypes.GetTypes(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "header-id", apiErr.RequestID)
}

func TestGetTypesTransportError(t *testing.T) {
	c, srv := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := c.ContentTypes.GetTypes(context.Background())
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.StatusCode)
	assert.NotNil(t, errors.Unwrap(apiErr))
}

func TestGetTypesInvalidBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := c.ContentTypes.GetTypes(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.ErrorContains(t, err, "decoding content types")
}

func TestClientHost(t *testing.T) {
	assert.Equal(t, "cdn.contentful.com", NewClient(&ClientOptions{}).host())
	assert.Equal(t, "preview.contentful.com", NewClient(&ClientOptions{Preview: true}).host())
	assert.Equal(t, "example.com", NewClient(&ClientOptions{Preview: true, ApiHost: "example.com"}).host())
	assert.Equal(t, "master", NewClient(&ClientOptions{}).environment())
}
