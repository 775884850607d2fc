package domain

import "time"

// User is an account of the app. Guests have no linked provider account yet.
type User struct {
	ID          string        `json:"id"`
	DisplayName string        `json:"display_name"`
	IsGuest     bool          `json:"is_guest"`
	GuestCode   string        `json:"guest_code,omitempty"`
	Links       []AccountLink `json:"links,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
}

// AccountLink ties a user to an external identity provider account
type AccountLink struct {
	UserID            string    `json:"user_id"`
	Provider          string    `json:"provider"`
	ProviderAccountID string    `json:"provider_account_id"`
	LinkedAt          time.Time `json:"linked_at"`
}

// Supported identity providers
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
	ProviderLine   = "line"
	ProviderApple  = "apple"
)

// ValidProviders lists the providers accounts can be linked to
var ValidProviders = map[string]bool{
	ProviderGoogle: true,
	ProviderGitHub: true,
	ProviderLine:   true,
	ProviderApple:  true,
}
