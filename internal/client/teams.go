// ABOUTME: Team endpoints: listing, creation, invitations and join requests
// ABOUTME: Includes the inbox surface (invites, mark-viewed, accept/reject)

package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// TeamInput is the payload for creating a team
type TeamInput struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category,omitempty"`
	Hackathon      int      `json:"hackathon,omitempty"`
	RequiredSkills []string `json:"required_skills,omitempty"`
	TeamSize       int      `json:"team_size,omitempty"`
}

// MyTeams lists the teams the current user belongs to
func (c *Client) MyTeams(ctx context.Context) ([]Team, error) {
	var out []Team
	if err := c.do(ctx, http.MethodGet, "/teams/myteams", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListTeams lists open teams, optionally filtered by category or hackathon
func (c *Client) ListTeams(ctx context.Context, category string, hackathonID int) ([]Team, error) {
	params := url.Values{}
	if category != "" {
		params.Set("category", category)
	}
	if hackathonID > 0 {
		params.Set("hackathon_id", strconv.Itoa(hackathonID))
	}

	path := "/teams/"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var out []Team
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchTeams searches open teams by free text and skills
func (c *Client) SearchTeams(ctx context.Context, q, skills string) ([]Team, error) {
	params := url.Values{}
	if q != "" {
		params.Set("q", q)
	}
	if skills != "" {
		params.Set("skills", skills)
	}

	path := "/teams/search"
	if query := params.Encode(); query != "" {
		path += "?" + query
	}

	var out []Team
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTeam creates a new team led by the current user
func (c *Client) CreateTeam(ctx context.Context, input *TeamInput) (*Team, error) {
	var out Team
	if err := c.do(ctx, http.MethodPost, "/teams/", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTeam fetches a team including its member roster
func (c *Client) GetTeam(ctx context.Context, id int) (*TeamDetail, error) {
	var out TeamDetail
	if err := c.do(ctx, http.MethodGet, "/teams/"+strconv.Itoa(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeam removes a team; only the lead may do this
func (c *Client) DeleteTeam(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/teams/"+strconv.Itoa(id), nil, nil)
}

// InviteToTeam invites a user to join a team
func (c *Client) InviteToTeam(ctx context.Context, teamID, userID int) error {
	body := map[string]int{"team_id": teamID, "user_id": userID}
	return c.do(ctx, http.MethodPost, "/teams/invite", body, nil)
}

// ApplyToTeam sends a join request for a team
func (c *Client) ApplyToTeam(ctx context.Context, teamID int) error {
	body := map[string]int{"team_id": teamID}
	return c.do(ctx, http.MethodPost, "/teams/apply", body, nil)
}

// MyInvites lists the current user's pending team invitations
func (c *Client) MyInvites(ctx context.Context) ([]Invite, error) {
	var out []Invite
	if err := c.do(ctx, http.MethodGet, "/teams/invites", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkInvitesViewed flips the viewed flag on all outstanding invites.
// Invite status is unaffected.
func (c *Client) MarkInvitesViewed(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/teams/invites/mark-viewed", nil, nil)
}

// AcceptInvite accepts a pending invitation by id
func (c *Client) AcceptInvite(ctx context.Context, inviteID int) error {
	return c.do(ctx, http.MethodPost, "/teams/accept-invite/"+strconv.Itoa(inviteID), nil, nil)
}

// RejectInvite declines a pending invitation by id
func (c *Client) RejectInvite(ctx context.Context, inviteID int) error {
	return c.do(ctx, http.MethodPost, "/teams/reject-invite/"+strconv.Itoa(inviteID), nil, nil)
}

// MyJoinRequests lists the current user's join requests across teams
func (c *Client) MyJoinRequests(ctx context.Context) ([]JoinRequest, error) {
	var out []JoinRequest
	if err := c.do(ctx, http.MethodGet, "/teams/join-requests", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
