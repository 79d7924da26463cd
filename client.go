package gocda

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCdnURL   = "cdn.contentful.com"
	defaultRetryMax = 3

	pathSpace        = "/spaces/%s"
	pathEntries      = pathSpace + "/entries"
	pathEntry        = pathEntries + "/%s"
	pathAssets       = pathSpace + "/assets"
	pathAsset        = pathAssets + "/%s"
	pathContentTypes = pathSpace + "/content_types"
	pathContentType  = pathContentTypes + "/%s"
)

type ClientOptions struct {
	CdnURL   string
	SpaceID  string
	CdnToken string
}

// Client talks to the delivery API and turns response bodies into typed
// resources. The registry and content type lookup are configured up front
// and only read during fetches.
type Client struct {
	client       *retryablehttp.Client
	Options      *ClientOptions
	AfterRequest func(c *Client, req *http.Request, elapsed time.Duration)

	registry *ModelRegistry
	types    ContentTypeLookup

	common       service
	Spaces       *SpacesService
	Entries      *EntriesService
	Assets       *AssetsService
	ContentTypes *ContentTypesService
}

type service struct {
	client *Client
}

func NewClient(options *ClientOptions, registry *ModelRegistry) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = defaultRetryMax
	rc.HTTPClient.Timeout = defaultTimeout
	rc.Logger = nil

	c := &Client{
		client:   rc,
		Options:  options,
		registry: registry,
	}
	c.common.client = c
	c.Spaces = (*SpacesService)(&c.common)
	c.Entries = (*EntriesService)(&c.common)
	c.Assets = (*AssetsService)(&c.common)
	c.ContentTypes = (*ContentTypesService)(&c.common)
	return c
}

// Registry exposes the client's model registry for configuration before the
// first fetch.
func (c *Client) Registry() *ModelRegistry {
	if c.registry == nil {
		c.registry = NewModelRegistry(OverwriteDuplicates)
	}
	return c.registry
}

// Types returns the installed content type lookup, nil before any schema
// was loaded.
func (c *Client) Types() ContentTypeLookup {
	return c.types
}

// UseContentTypes installs the schemas used to coerce entry fields.
// Entries of types absent from the lookup build in degraded shape
// inference mode.
func (c *Client) UseContentTypes(lookup ContentTypeLookup) {
	c.types = lookup
}

// LoadContentTypes fetches every content type of the space and installs
// the result as the client's schema lookup.
func (c *Client) LoadContentTypes() (ContentTypeLookup, error) {
	types, err := c.ContentTypes.Fetch()
	if err != nil {
		return nil, err
	}
	lookup := NewContentTypeLookup(types)
	c.types = lookup
	return lookup, nil
}

// ResolveLink fetches the target of an unresolved stub and builds it on its
// own, without batch resolution against anything else. This is the only
// network-incurring resolution path; a missing target is a NotFoundError.
func (c *Client) ResolveLink(link ResourceLink) (Resource, error) {
	var path string
	switch link.Kind {
	case TypeEntry:
		path = fmt.Sprintf(pathEntry, c.Options.SpaceID, link.ID)
	case TypeAsset:
		path = fmt.Sprintf(pathAsset, c.Options.SpaceID, link.ID)
	default:
		return nil, fmt.Errorf("cannot resolve link type %q", link.Kind)
	}

	body, err := c.get(path, nil)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, &NotFoundError{Link: link}
		}
		return nil, err
	}

	r, err := BuildResource(body, c.types)
	if err != nil {
		return nil, err
	}
	if e, ok := r.(*Entry); ok && c.registry != nil {
		if model, bindErr := c.registry.Bind(e); bindErr == nil {
			e.Model = model
		}
	}
	return r, nil
}

func (c *Client) get(path string, query url.Values) ([]byte, error) {
	host := defaultCdnURL
	if c.Options.CdnURL != "" {
		host = c.Options.CdnURL
	}

	u := &url.URL{
		Scheme: "https",
		Host:   host,
		Path:   path,
	}
	// A full base URL (scheme included) overrides the https default,
	// mainly for tests against local servers.
	if base, err := url.Parse(host); err == nil && base.Scheme != "" && base.Host != "" {
		u.Scheme = base.Scheme
		u.Host = base.Host
	}
	u.RawQuery = query.Encode()

	req, err := retryablehttp.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Options.CdnToken))

	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if c.AfterRequest != nil {
		c.AfterRequest(c, req.Request, time.Since(start))
	}

	if res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusBadRequest {
		return io.ReadAll(res.Body)
	}

	var e errorResponse
	if err := json.NewDecoder(res.Body).Decode(&e); err != nil {
		e.Message = res.Status
	}
	return nil, &APIError{StatusCode: res.StatusCode, Message: e.Message}
}
