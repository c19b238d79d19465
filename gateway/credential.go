package gateway

import (
	"context"
	"fmt"

	"github.com/viant/n8n-mcp/n8n"
)

// CredentialInput addresses one credential.
type CredentialInput struct {
	CredentialID string `json:"credential_id" validate:"required,notblank"`
}

// CreateCredentialInput carries create_credential arguments. Data holds the
// secret material and is never echoed back.
type CreateCredentialInput struct {
	Name           string                 `json:"name" validate:"required,notblank"`
	CredentialType string                 `json:"credential_type" validate:"required,notblank"`
	Data           map[string]interface{} `json:"data" validate:"required,min=1"`
}

// credentialTypes lists commonly used n8n credential types. n8n accepts many
// more; the list is advisory.
var credentialTypes = map[string]string{
	"httpBasicAuth":  "HTTP basic authentication (user, password)",
	"httpHeaderAuth": "Static HTTP header (name, value)",
	"httpQueryAuth":  "Static query parameter (name, value)",
	"oAuth2Api":      "Generic OAuth2 client",
	"jwtAuth":        "JSON Web Token signing key",
	"slackApi":       "Slack bot or user token",
	"githubApi":      "GitHub personal access token",
	"googleApi":      "Google service account",
	"aws":            "AWS access key pair",
	"smtp":           "SMTP server account",
	"mySql":          "MySQL connection",
	"postgres":       "PostgreSQL connection",
	"redis":          "Redis connection",
	"sshPassword":    "SSH user and password",
}

// Credentials is the credential gateway.
type Credentials struct {
	backend n8n.CredentialBackend
}

// NewCredentials creates a credential gateway.
func NewCredentials(backend n8n.CredentialBackend) *Credentials {
	return &Credentials{backend: backend}
}

func (c *Credentials) List(ctx context.Context, input *ListInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	page, err := c.backend.ListCredentials(ctx, input.options())
	if err != nil {
		return nil, err
	}
	items := make([]map[string]interface{}, 0, len(page.Items))
	for _, credential := range page.Items {
		items = append(items, credentialView(credential))
	}
	return listResult("credentials", "credential", page, items), nil
}

func (c *Credentials) Get(ctx context.Context, input *CredentialInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	credential, err := c.backend.GetCredential(ctx, input.CredentialID)
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Credential %q (%s) of type %s", credential.Name, credential.ID, credential.Type),
		Data:    map[string]interface{}{"credential": credentialView(credential)},
	}, nil
}

func (c *Credentials) Create(ctx context.Context, input *CreateCredentialInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	credential, err := c.backend.CreateCredential(ctx, &n8n.CredentialCreate{
		Name: input.Name,
		Type: input.CredentialType,
		Data: input.Data,
	})
	if err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Created credential %q with id %s", credential.Name, credential.ID),
		Data:    map[string]interface{}{"credential": credentialView(credential)},
	}, nil
}

func (c *Credentials) Delete(ctx context.Context, input *CredentialInput) (*Result, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	if err := c.backend.DeleteCredential(ctx, input.CredentialID); err != nil {
		return nil, err
	}
	return &Result{
		Message: fmt.Sprintf("Deleted credential %s", input.CredentialID),
		Data:    map[string]interface{}{"credential_id": input.CredentialID, "deleted": true},
	}, nil
}

// Types returns the advisory credential type catalogue.
func (c *Credentials) Types(ctx context.Context) (*Result, error) {
	types := make(map[string]interface{}, len(credentialTypes))
	for name, description := range credentialTypes {
		types[name] = description
	}
	return &Result{
		Message:   fmt.Sprintf("%d common credential types", len(types)),
		Data:      map[string]interface{}{"credential_types": types},
		NextSteps: []string{"Pass one of these keys as credential_type to create_credential"},
	}, nil
}

// credentialView copies the public fields one by one so that whatever the
// backend returns, secret data cannot reach the caller.
func credentialView(credential *n8n.Credential) map[string]interface{} {
	view := map[string]interface{}{
		"id":   credential.ID,
		"name": credential.Name,
		"type": credential.Type,
	}
	if credential.CreatedAt != nil {
		view["createdAt"] = credential.CreatedAt
	}
	if credential.UpdatedAt != nil {
		view["updatedAt"] = credential.UpdatedAt
	}
	return view
}
