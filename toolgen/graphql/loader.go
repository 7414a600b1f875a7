package graphql

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/viant/afs"
	"github.com/viant/mcp-toolgen/toolgen/tool"
)

// Loader obtains introspection documents from a live endpoint or a file.
type Loader struct {
	fs     afs.Service
	client *resty.Client
}

// NewLoader returns a loader with a default file service and HTTP client.
func NewLoader() *Loader {
	return &Loader{fs: afs.New(), client: resty.New()}
}

// Load reads an introspection document from source. An http(s) address is
// treated as a live GraphQL endpoint and introspected with a single POST;
// anything else is read as a JSON file. Headers apply to the endpoint case
// only.
func (l *Loader) Load(ctx context.Context, source string, headers map[string]string) (*Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return l.Fetch(ctx, source, headers)
	}
	data, err := l.fs.DownloadWithURL(ctx, source)
	if err != nil {
		return nil, tool.NewLoadError(err, "failed to read introspection file %q", source)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, tool.NewLoadError(err, "failed to parse introspection file %q", source)
	}
	if doc.Data == nil || doc.Data.Schema == nil {
		return nil, tool.NewLoadError(nil, "introspection file %q has no data.__schema payload", source)
	}
	return &doc, nil
}

// Fetch performs exactly one introspection POST against a live endpoint. No
// retries; the call blocks until the response completes or errors.
func (l *Loader) Fetch(ctx context.Context, url string, headers map[string]string) (*Document, error) {
	response, err := l.client.R().
		SetContext(ctx).
		SetHeaders(headers).
		SetBody(map[string]string{"query": IntrospectionQuery}).
		Post(url)
	if err != nil {
		return nil, tool.NewLoadError(err, "introspection request to %s failed", url)
	}
	if response.IsError() {
		return nil, tool.NewLoadError(nil, "introspection request to %s returned HTTP %d: %s", url, response.StatusCode(), response.String())
	}
	var doc Document
	if err := json.Unmarshal(response.Body(), &doc); err != nil {
		return nil, tool.NewLoadError(err, "failed to parse introspection response from %s: %s", url, response.String())
	}
	if doc.Data == nil || doc.Data.Schema == nil {
		// the raw body is part of the diagnostic: it typically carries the
		// server-side error list explaining why introspection failed
		return nil, tool.NewLoadError(nil, "introspection failed: %s", response.String())
	}
	return &doc, nil
}
