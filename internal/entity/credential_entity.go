package entity

import "time"

// PinterestCredential is the single active Pinterest access token.
type PinterestCredential struct {
	AccessToken string
	Scope       string
	// ExpiresIn is the lifetime in seconds reported by Pinterest; 0 when unknown.
	ExpiresIn int64
	CreatedAt time.Time
}
