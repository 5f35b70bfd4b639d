// Package identity wraps the managed authentication provider. Credentials
// live entirely with the provider; this service only keeps the profile row
// and trusts the identity asserted by the provider's tokens.
package identity

import (
	"fmt"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// SupabaseProvider talks to the GoTrue admin API with the service key.
type SupabaseProvider struct {
	client gotrue.Client
}

func NewSupabaseProvider(projectRef, serviceKey string) *SupabaseProvider {
	client := gotrue.New(projectRef, serviceKey).WithToken(serviceKey)
	return &SupabaseProvider{client: client}
}

// CreateUser registers the account with the provider and returns the
// provider-issued user id, which becomes the profile's primary key.
func (p *SupabaseProvider) CreateUser(email, password, fullName string) (string, error) {
	resp, err := p.client.AdminCreateUser(types.AdminCreateUserRequest{
		Email:        email,
		Password:     &password,
		EmailConfirm: true,
		UserMetadata: map[string]interface{}{
			"full_name": fullName,
		},
	})
	if err != nil {
		return "", fmt.Errorf("identity provider rejected user creation: %w", err)
	}
	return resp.ID.String(), nil
}

// SendPasswordReset asks the provider to email a recovery link.
func (p *SupabaseProvider) SendPasswordReset(email string) error {
	if err := p.client.Recover(types.RecoverRequest{Email: email}); err != nil {
		return fmt.Errorf("could not send reset email: %w", err)
	}
	return nil
}
