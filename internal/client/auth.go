// ABOUTME: Authentication and profile endpoints
// ABOUTME: Login, register, current-user fetch and profile update

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// TokenPair is the bearer credential pair issued on login
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisteredUser is the minimal record returned by account creation
type RegisteredUser struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Login exchanges credentials for a token pair. The token is not installed
// on the client; the session manager decides what to do with it.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	var out TokenPair
	if err := c.do(ctx, http.MethodPost, "/users/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account. It does not log in.
func (c *Client) Register(ctx context.Context, email, username, password, fullName string) (*RegisteredUser, error) {
	body := map[string]string{
		"email":     email,
		"username":  username,
		"password":  password,
		"full_name": fullName,
	}
	var out RegisteredUser
	if err := c.do(ctx, http.MethodPost, "/users/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser fetches the authenticated user's profile
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile updates fields on the authenticated user's profile
func (c *Client) UpdateProfile(ctx context.Context, fields map[string]interface{}) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodPut, "/users/me", fields, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchUsers searches profiles by free text, skill list and availability
func (c *Client) SearchUsers(ctx context.Context, q, skills, availability string) ([]User, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if skills != "" {
		params.Set("skills", skills)
	}
	if availability != "" {
		params.Set("availability", availability)
	}

	path := "/users/search"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var out []User
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches a single profile by id
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var out User
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
