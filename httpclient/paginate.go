// httpclient/paginate.go
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/logger"
	"github.com/deploymenttheory/go-api-sdk-planningcenter/response"
	"go.uber.org/zap"
)

// paginate fetches path and every page reachable through links.next. Each page runs
// through the full retry loop; an error on any page discards what was gathered.
// A first page whose data is not an array is returned untouched.
func (c *Client) paginate(ctx context.Context, path string, log logger.Logger) (*response.Envelope, error) {
	page, err := c.executeRequestWithRetries(ctx, http.MethodGet, path, nil, log)
	if err != nil {
		return nil, err
	}
	if !page.IsCollection() {
		return page, nil
	}

	items := make([]json.RawMessage, 0)
	var included []response.Resource
	visited := map[string]bool{path: true}
	pages := 0

	for {
		pageItems, err := page.Items()
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pages+1, err)
		}
		items = append(items, pageItems...)
		included = append(included, page.Included...)
		pages++

		next := page.NextLink()
		if next == "" {
			break
		}
		nextPath, err := relativeLink(next)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pages, err)
		}
		if visited[nextPath] {
			log.Warn("Pagination link repeats, stopping", zap.String("next", nextPath), zap.Int("pages", pages))
			break
		}
		visited[nextPath] = true

		log.Debug("Fetching next page", zap.String("next", nextPath), zap.Int("page", pages+1), zap.Int("items_so_far", len(items)))
		page, err = c.executeRequestWithRetries(ctx, http.MethodGet, nextPath, nil, log)
		if err != nil {
			return nil, err
		}
		if !page.IsCollection() {
			return nil, fmt.Errorf("page %d: expected a collection document", pages+1)
		}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble paginated data: %w", err)
	}

	log.Debug("Pagination complete", zap.Int("pages", pages), zap.Int("items", len(items)))
	return &response.Envelope{
		Data:     data,
		Included: included,
		Meta:     page.Meta,
		Links:    page.Links,
	}, nil
}

// relativeLink keeps only the path and query of a links.next value so that the next
// page is requested against the configured base URL.
func relativeLink(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil {
		return "", fmt.Errorf("invalid next link %q: %w", link, err)
	}
	if u.RawQuery == "" {
		return u.EscapedPath(), nil
	}
	return u.EscapedPath() + "?" + u.RawQuery, nil
}
