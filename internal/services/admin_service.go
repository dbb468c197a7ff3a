package services

import (
	"sort"
	"time"
)

type AdminStore interface {
	FindAccountByEmail(email string) (*Account, error)
	UpdateAccount(a *Account) error
	ListAccounts() ([]*Account, error)
	ListRequests() ([]*SwapRequest, error)
	AddAnnouncement(an *Announcement) error
	CountFeedback() (int, error)
}

type AdminService struct {
	store AdminStore
	now   func() time.Time
}

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type Report struct {
	TotalAccounts     int          `json:"total_accounts"`
	SuspendedAccounts int          `json:"suspended_accounts"`
	TotalRequests     int          `json:"total_requests"`
	AcceptedRequests  int          `json:"accepted_requests"`
	PendingRequests   int          `json:"pending_requests"`
	TotalFeedback     int          `json:"total_feedback"`
	TopOffered        []SkillCount `json:"top_offered"`
	TopWanted         []SkillCount `json:"top_wanted"`
	GeneratedAt       time.Time    `json:"generated_at"`
}

func NewAdminService(store AdminStore) *AdminService {
	return &AdminService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// authorize gates every moderation operation: an active session whose
// account carries the admin capability, anything else is not_authorized.
func (s *AdminService) authorize(sess *Session) error {
	if sess == nil || !sess.IsAdmin {
		return NewNotAuthorizedError("admin access required")
	}
	return nil
}

// Ban suspends the account. Banning an already-suspended account is a no-op
// that still succeeds.
func (s *AdminService) Ban(sess *Session, email string) (*Account, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	a, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("account not found")
	}
	if a.Suspended {
		return a, nil
	}
	a.Suspended = true
	if err := s.store.UpdateAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Announce appends a timestamped message to the platform announcement log.
func (s *AdminService) Announce(sess *Session, message string) (*Announcement, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	if message == "" {
		return nil, NewInvalidError("message required")
	}
	an := &Announcement{Message: message, CreatedAt: s.now()}
	if err := s.store.AddAnnouncement(an); err != nil {
		return nil, err
	}
	return an, nil
}

// AllRequests is the moderation view over every swap request on the
// platform, in creation order.
func (s *AdminService) AllRequests(sess *Session) ([]*SwapRequest, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	return s.store.ListRequests()
}

// Report aggregates platform counters and the five most-offered and
// most-wanted skills across non-admin accounts. Ranking is by frequency
// with ties kept in first-encountered order.
func (s *AdminService) Report(sess *Session) (*Report, error) {
	if err := s.authorize(sess); err != nil {
		return nil, err
	}
	accounts, err := s.store.ListAccounts()
	if err != nil {
		return nil, err
	}
	requests, err := s.store.ListRequests()
	if err != nil {
		return nil, err
	}
	feedbackTotal, err := s.store.CountFeedback()
	if err != nil {
		return nil, err
	}
	rep := &Report{TotalFeedback: feedbackTotal, GeneratedAt: s.now()}
	offered := newSkillCounter()
	wanted := newSkillCounter()
	for _, a := range accounts {
		if a.Suspended {
			rep.SuspendedAccounts++
		}
		if a.IsAdmin {
			continue
		}
		rep.TotalAccounts++
		offered.addAll(a.SkillsOffered)
		wanted.addAll(a.SkillsWanted)
	}
	rep.TotalRequests = len(requests)
	for _, r := range requests {
		switch r.Status {
		case StatusAccepted:
			rep.AcceptedRequests++
		case StatusPending:
			rep.PendingRequests++
		}
	}
	rep.TopOffered = offered.top(5)
	rep.TopWanted = wanted.top(5)
	return rep, nil
}

// skillCounter tallies skill occurrences while remembering the order each
// skill was first seen, so equal counts rank stably.
type skillCounter struct {
	counts map[string]int
	order  []string
}

func newSkillCounter() *skillCounter {
	return &skillCounter{counts: map[string]int{}}
}

func (c *skillCounter) addAll(skills []string) {
	for _, skill := range skills {
		if _, seen := c.counts[skill]; !seen {
			c.order = append(c.order, skill)
		}
		c.counts[skill]++
	}
}

func (c *skillCounter) top(n int) []SkillCount {
	out := make([]SkillCount, 0, len(c.order))
	for _, skill := range c.order {
		out = append(out, SkillCount{Skill: skill, Count: c.counts[skill]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
