package cfmodels

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	timeout         = 10 * time.Second
	hostname        = "cdn.contentful.com"
	previewHostname = "preview.contentful.com"

	defaultEnvironment = "master"

	pathSpace        = "/spaces/%s"
	pathEnvironment  = pathSpace + "/environments/%s"
	pathContentTypes = pathEnvironment + "/content_types"

	headerRequestID = "X-Contentful-Request-Id"
)

type Client struct {
	client       *http.Client
	Options      *ClientOptions
	AfterRequest func(c *Client, req *http.Request, elapsed time.Duration)

	ContentTypes *ContentTypesService
}

type ClientOptions struct {
	ApiToken      string
	SpaceID       string
	EnvironmentID string
	ApiHost       string
	Preview       bool
	// HTTPClient replaces the default pooled client, mostly for tests.
	HTTPClient *http.Client
}

type service struct {
	client *Client
}

func NewClient(options *ClientOptions) *Client {
	httpClient := options.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = timeout
	}

	c := &Client{
		Options: options,
		client:  httpClient,
	}
	c.ContentTypes = &ContentTypesService{client: c}
	return c
}

func (c *Client) host() string {
	if c.Options.ApiHost != "" {
		return c.Options.ApiHost
	}
	if c.Options.Preview {
		return previewHostname
	}
	return hostname
}

func (c *Client) environment() string {
	if c.Options.EnvironmentID != "" {
		return c.Options.EnvironmentID
	}
	return defaultEnvironment
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.req(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) req(ctx context.Context, method string, path string, query url.Values, body io.Reader) ([]byte, error) {
	u := &url.URL{
		Scheme: "https",
		Host:   c.host(),
		Path:   path,
	}
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Options.ApiToken))

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		return nil, &APIError{Message: err.Error(), Err: err}
	}
	defer res.Body.Close()
	if c.AfterRequest != nil {
		c.AfterRequest(c, req, time.Since(start))
	}

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusBadRequest {
		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, &APIError{StatusCode: res.StatusCode, Message: err.Error(), Err: err}
		}
		return data, nil
	}

	return nil, newAPIError(res)
}

func newAPIError(res *http.Response) *APIError {
	apiErr := &APIError{
		StatusCode: res.StatusCode,
		RequestID:  res.Header.Get(headerRequestID),
	}

	var e errorResponse
	if err := json.NewDecoder(res.Body).Decode(&e); err != nil && !errors.Is(err, io.EOF) {
		apiErr.Message = http.StatusText(res.StatusCode)
		return apiErr
	}

	apiErr.Message = e.Message
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(res.StatusCode)
	}
	if e.RequestID != "" {
		apiErr.RequestID = e.RequestID
	}
	if e.Sys != nil {
		apiErr.ID = e.Sys.ID
	}
	apiErr.Details = decodeErrorDetails(e.Details)
	return apiErr
}
