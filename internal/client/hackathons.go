// ABOUTME: Hackathon endpoints: listing, search and registration

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Hackathons lists events, optionally filtered by category, mode and status
func (c *Client) Hackathons(ctx context.Context, category, mode, status string) ([]Hackathon, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if mode != "" {
		params.Set("mode", mode)
	}
	if status != "" {
		params.Set("status", status)
	}

	path := "/hackathons/"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var out []Hackathon
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchHackathons searches events by free text
func (c *Client) SearchHackathons(ctx context.Context, q string) ([]Hackathon, error) {
	path := "/hackathons/search?q=" + url.QueryEscape(q)
	var out []Hackathon
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Hackathon fetches a single event by id
func (c *Client) Hackathon(ctx context.Context, id int) (*Hackathon, error) {
	var out Hackathon
	if err := c.do(ctx, http.MethodGet, "/hackathons/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterForHackathon registers the current user for an event
func (c *Client) RegisterForHackathon(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPost, "/hackathons/"+strconv.Itoa(id)+"/register", nil, nil)
}

// MyRegistrations lists events the current user is registered for
func (c *Client) MyRegistrations(ctx context.Context) ([]Hackathon, error) {
	var out []Hackathon
	if err := c.do(ctx, http.MethodGet, "/hackathons/my-registrations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
