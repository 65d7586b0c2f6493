package provider

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
)

// Compile-time interface check.
var _ port.UserDirectory = (*UserClient)(nil)

// UserClient implements port.UserDirectory against the external user service.
type UserClient struct {
	client fetchClient
}

// NewUserClient creates a new user directory client.
func NewUserClient(baseURL string, opts Options, logger *slog.Logger) *UserClient {
	return &UserClient{client: newFetchClient(baseURL, opts, logger)}
}

// userPayload mirrors the upstream user document; the city lives inside a
// nested address object.
type userPayload struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address struct {
		City string `json:"city"`
	} `json:"address"`
}

// FetchUser retrieves a single user record by ID.
func (c *UserClient) FetchUser(ctx context.Context, id int) (model.UserRecord, error) {
	var payload userPayload
	if err := c.client.getJSON(ctx, strconv.Itoa(id), &payload); err != nil {
		return model.UserRecord{}, err
	}

	return model.UserRecord{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
		City:  payload.Address.City,
	}, nil
}
