package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/viant/n8n-mcp/n8n"
)

func credentialPath(id string) string {
	return "/credentials/" + url.PathEscape(id)
}

// Credential answers are decoded into n8n.Credential, which has no field for
// secret data, so anything n8n echoes back is dropped here.

func (c *Client) ListCredentials(ctx context.Context, opts n8n.ListOptions) (*n8n.Page[*n8n.Credential], error) {
	var out listEnvelope[*n8n.Credential]
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/credentials", query: listQuery(opts)}, &out); err != nil {
		return nil, err
	}
	return &n8n.Page[*n8n.Credential]{Items: out.Data, NextCursor: cursorOf(out.NextCursor)}, nil
}

func (c *Client) GetCredential(ctx context.Context, id string) (*n8n.Credential, error) {
	var out entity[n8n.Credential]
	if err := c.do(ctx, &request{method: http.MethodGet, path: credentialPath(id)}, &out); err != nil {
		return nil, notFound(err, n8n.ResourceCredential, id)
	}
	return out.Value, nil
}

func (c *Client) CreateCredential(ctx context.Context, create *n8n.CredentialCreate) (*n8n.Credential, error) {
	req := &request{
		method:  http.MethodPost,
		path:    "/credentials",
		body:    create,
		secrets: n8n.SecretValues(create.Data),
	}
	var out entity[n8n.Credential]
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return out.Value, nil
}

func (c *Client) DeleteCredential(ctx context.Context, id string) error {
	err := c.do(ctx, &request{method: http.MethodDelete, path: credentialPath(id)}, nil)
	return notFound(err, n8n.ResourceCredential, id)
}
