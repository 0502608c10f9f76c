// Package remote fetches the user listing from the upstream CRM admin API.
// This is the only outbound call the service makes; every other collection
// is fixture-seeded regardless of profile.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-nexus-crm/internal/model"
	"go-nexus-crm/pkg/validator"
)

type UsersClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewUsersClient(endpoint, token string) *UsersClient {
	return &UsersClient{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchUsers performs an authenticated GET against {endpoint}/api/admin/users
// and decodes the JSON array of user records. Records missing required
// fields are rejected: fetched data is validated at the boundary, not
// trusted by shape.
func (c *UsersClient) FetchUsers(ctx context.Context) ([]model.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/api/admin/users", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to fetch users: status %d", resp.StatusCode)
	}

	var users []model.User
	if err := json.NewDecoder(resp.Body).Decode(&users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}

	for i := range users {
		if errs := validator.ValidateStruct(&users[i]); len(errs) > 0 {
			return nil, fmt.Errorf("invalid user record at index %d: field '%s' failed on tag '%s'",
				i, errs[0].FailedField, errs[0].Tag)
		}
	}
	return users, nil
}
