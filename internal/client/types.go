// ABOUTME: Domain types returned by the BuildBuddy API
// ABOUTME: JSON field names match the backend schemas exactly

package client

// User is a BuildBuddy profile
type User struct {
	ID             int      `json:"id"`
	Email          string   `json:"email"`
	Username       string   `json:"username"`
	FullName       string   `json:"full_name"`
	Bio            string   `json:"bio"`
	Location       string   `json:"location"`
	Skills         []string `json:"skills"`
	Experience     string   `json:"experience"`
	Availability   string   `json:"availability"` // available, looking, busy
	Role           string   `json:"role"`
	GithubURL      string   `json:"github_url"`
	LinkedinURL    string   `json:"linkedin_url"`
	PortfolioURL   string   `json:"portfolio_url"`
	ProfilePicture string   `json:"profile_picture,omitempty"`
}

// DisplayName prefers the full name, falling back to the username
func (u *User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// TeamMember is a user's membership entry within a team
type TeamMember struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Skills   string `json:"skills,omitempty"`
}

// Team is a hackathon team summary
type Team struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Category       string   `json:"category"`
	HackathonName  string   `json:"hackathon_name"`
	LeadName       string   `json:"lead_name"`
	RequiredSkills []string `json:"required_skills"`
	OpenPositions  int      `json:"open_positions"`
	MemberCount    int      `json:"member_count"`
	CreatedAt      string   `json:"created_at"`
}

// TeamDetail is a team including its member roster
type TeamDetail struct {
	Team
	LeadID  int          `json:"lead_id,omitempty"`
	Members []TeamMember `json:"members"`
}

// Invite statuses
const (
	InviteStatusInvited  = "invited"
	InviteStatusAccepted = "accepted"
	InviteStatusRejected = "rejected"
)

// Invite is a pending team invitation addressed to the current user
type Invite struct {
	ID          int    `json:"id"`
	TeamName    string `json:"team_name"`
	InviterName string `json:"inviter_name"`
	TimeAgo     string `json:"time_ago"`
	Role        string `json:"role"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	Viewed      bool   `json:"viewed"`
}

// JoinRequest statuses
const (
	RequestStatusPending  = "pending"
	RequestStatusAccepted = "accepted"
	RequestStatusRejected = "rejected"
)

// JoinRequest is the current user's request to join a team
type JoinRequest struct {
	ID       int    `json:"id"`
	TeamName string `json:"team_name"`
	TimeAgo  string `json:"time_ago"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// Message is a single chat message within a conversation
type Message struct {
	ID         int    `json:"id"`
	SenderID   int    `json:"sender_id"`
	SenderName string `json:"sender_name"`
	Content    string `json:"content"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

// Conversation is a direct or team-wide message thread
type Conversation struct {
	ID               int      `json:"id"`
	Participants     []int    `json:"participants"`
	ParticipantNames []string `json:"participant_names"`
	LastMessage      string   `json:"last_message"`
	UnreadCount      int      `json:"unread_count"`
	UpdatedAt        string   `json:"updated_at"`
	IsGroupChat      bool     `json:"is_group_chat,omitempty"`
	TeamID           int      `json:"team_id,omitempty"`
	TeamName         string   `json:"team_name,omitempty"`
}

// ConversationDetail is a conversation including its messages
type ConversationDetail struct {
	Conversation
	Messages []Message `json:"messages"`
}

// Task statuses and priorities as the board uses them
const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

// Task is a kanban board entry belonging to a team
type Task struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Priority       string `json:"priority"`
	Color          string `json:"color,omitempty"`
	AssignedToID   *int   `json:"assigned_to_id"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
	CreatedByID    int    `json:"created_by_id"`
	CreatedByName  string `json:"created_by_name"`
	DueDate        string `json:"due_date,omitempty"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// Hackathon is an event teams form around
type Hackathon struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Category         string `json:"category"`
	Mode             string `json:"mode"` // in-person, remote, hybrid
	Status           string `json:"status"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Location         string `json:"location"`
	Prize            string `json:"prize"`
	MaxParticipants  int    `json:"max_participants"`
	ParticipantCount int    `json:"participant_count"`
	WebsiteURL       string `json:"website_url"`
	RegistrationURL  string `json:"registration_url"`
}
