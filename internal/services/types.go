package services

import "time"

type RequestStatus string

const (
	StatusPending  RequestStatus = "Pending"
	StatusAccepted RequestStatus = "Accepted"
	StatusRejected RequestStatus = "Rejected"
)

// Terminal reports whether the status admits no further transitions.
func (s RequestStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

type Account struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PassHash      []byte    `json:"-"`
	Location      string    `json:"location,omitempty"`
	AvatarURL     string    `json:"avatar_url,omitempty"`
	SkillsOffered []string  `json:"skills_offered"`
	SkillsWanted  []string  `json:"skills_wanted"`
	Availability  string    `json:"availability,omitempty"`
	IsPublic      bool      `json:"is_public"`
	IsAdmin       bool      `json:"is_admin,omitempty"`
	Suspended     bool      `json:"suspended,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// OffersSkill reports whether the account lists skill among its offered
// skills. Matching is exact; search-style substring matching lives in the
// directory service.
func (a *Account) OffersSkill(skill string) bool {
	for _, s := range a.SkillsOffered {
		if s == skill {
			return true
		}
	}
	return false
}

type Feedback struct {
	FromEmail string    `json:"from_email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type SwapRequest struct {
	ID             string        `json:"id"`
	RequesterID    string        `json:"requester_id"`
	RecipientID    string        `json:"recipient_id"`
	OfferedSkill   string        `json:"offered_skill"`
	RequestedSkill string        `json:"requested_skill"`
	Message        string        `json:"message,omitempty"`
	Status         RequestStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Session identifies the acting account for gated operations. Sessions are
// keyed per caller token rather than held in a process-wide pointer, so any
// number of callers can be signed in at once.
type Session struct {
	Token     string    `json:"token"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Announcement struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
