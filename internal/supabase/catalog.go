package supabase

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CatalogClient reads the courses and materials tables through PostgREST.
// Rows are passed on untouched.
type CatalogClient struct {
	*Client
}

func NewCatalogClient(c *Client) *CatalogClient { return &CatalogClient{Client: c} }

func (c *CatalogClient) ListCourses(ctx context.Context) ([]json.RawMessage, error) {
	return c.selectAll(ctx, "courses", url.Values{})
}

func (c *CatalogClient) ListMaterials(ctx context.Context, courseID string) ([]json.RawMessage, error) {
	return c.selectAll(ctx, "materials", url.Values{"course_id": {"eq." + courseID}})
}

func (c *CatalogClient) selectAll(ctx context.Context, table string, filter url.Values) ([]json.RawMessage, error) {
	filter.Set("select", "*")
	rows := []json.RawMessage{}
	if err := c.do(ctx, http.MethodGet, "/rest/v1/"+table, filter, nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
