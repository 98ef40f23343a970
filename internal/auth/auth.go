// Package auth provides Signal Sciences dashboard API authentication.
package auth

import "net/url"

// Credentials holds the dashboard login credential pair.
type Credentials struct {
	Email    string
	Password string
}

// FormValues encodes the credentials as the URL-encoded form body
// expected by the /auth endpoint.
func (c *Credentials) FormValues() url.Values {
	return url.Values{
		"email":    {c.Email},
		"password": {c.Password},
	}
}

// Valid reports whether both credential fields are configured.
func (c *Credentials) Valid() bool {
	return c != nil && c.Email != "" && c.Password != ""
}

// Token is the response body of a successful /auth call.
type Token struct {
	Token string `json:"token"`
}
