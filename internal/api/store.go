package api

import (
	"sync"
	"time"
)

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

type Feedback struct {
	FromEmail string    `json:"from_email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type SwapRequest struct {
	ID             string    `json:"id"`
	RequesterID    string    `json:"requester_id"`
	RecipientID    string    `json:"recipient_id"`
	OfferedSkill   string    `json:"offered_skill"`
	RequestedSkill string    `json:"requested_skill"`
	Message        string    `json:"message,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

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

// memoryStore keeps all directory state in process memory. Emails key the
// account table case-sensitively; accountOrder preserves registration order
// so listings and pagination enumerate stably.
type memoryStore struct {
	mu              sync.RWMutex
	accountsByEmail map[string]*Account
	accountsByID    map[string]*Account
	accountOrder    []string
	feedback        map[string][]*Feedback
	requests        []*SwapRequest
	requestsByID    map[string]*SwapRequest
	sessions        map[string]*Session
	announcements   []*Announcement
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accountsByEmail: map[string]*Account{},
		accountsByID:    map[string]*Account{},
		feedback:        map[string][]*Feedback{},
		requests:        []*SwapRequest{},
		requestsByID:    map[string]*SwapRequest{},
		sessions:        map[string]*Session{},
		announcements:   []*Announcement{},
	}
}

// AddAccount inserts under the write lock so the unique-email check and the
// insert are one atomic step. Returns false when the email is taken.
func (s *memoryStore) AddAccount(a *Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accountsByEmail[a.Email]; exists {
		return false
	}
	s.accountsByEmail[a.Email] = a
	s.accountsByID[a.ID] = a
	s.accountOrder = append(s.accountOrder, a.Email)
	return true
}

func (s *memoryStore) FindAccountByEmail(email string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountsByEmail[email]
}

func (s *memoryStore) GetAccount(id string) *Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accountsByID[id]
}

func (s *memoryStore) UpdateAccount(a *Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing := s.accountsByID[a.ID]
	if existing == nil {
		return false
	}
	// email is the immutable lookup key; keep the stored one
	a.Email = existing.Email
	s.accountsByID[a.ID] = a
	s.accountsByEmail[a.Email] = a
	return true
}

func (s *memoryStore) ListAccounts() []*Account {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Account, 0, len(s.accountOrder))
	for _, email := range s.accountOrder {
		out = append(out, s.accountsByEmail[email])
	}
	return out
}

func (s *memoryStore) AddFeedback(accountID string, f *Feedback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.feedback[accountID] = append(s.feedback[accountID], f)
}

func (s *memoryStore) ListFeedback(accountID string) []*Feedback {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Feedback(nil), s.feedback[accountID]...)
}

func (s *memoryStore) CountFeedback() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0
	for _, fb := range s.feedback {
		total += len(fb)
	}
	return total
}

func (s *memoryStore) AddRequest(r *SwapRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
	s.requestsByID[r.ID] = r
}

func (s *memoryStore) GetRequest(id string) *SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRequest(s.requestsByID[id])
}

// copyRequest snapshots a stored request. ResolveRequest mutates requests in
// place, so readers get a copy taken while the lock is held rather than the
// shared pointer.
func copyRequest(r *SwapRequest) *SwapRequest {
	if r == nil {
		return nil
	}
	cp := *r
	return &cp
}

// ResolveRequest moves a request out of Pending. The check and the write
// share the lock, so at most one resolution ever lands.
func (s *memoryStore) ResolveRequest(id, status string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.requestsByID[id]
	if r == nil || r.Status != "Pending" {
		return false
	}
	r.Status = status
	r.UpdatedAt = at
	return true
}

func (s *memoryStore) ListRequests() []*SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*SwapRequest, 0, len(s.requests))
	for _, r := range s.requests {
		out = append(out, copyRequest(r))
	}
	return out
}

func (s *memoryStore) ListRequestsByRecipient(accountID string) []*SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*SwapRequest{}
	for _, r := range s.requests {
		if r.RecipientID == accountID {
			out = append(out, copyRequest(r))
		}
	}
	return out
}

func (s *memoryStore) ListRequestsByRequester(accountID string) []*SwapRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []*SwapRequest{}
	for _, r := range s.requests {
		if r.RequesterID == accountID {
			out = append(out, copyRequest(r))
		}
	}
	return out
}

func (s *memoryStore) AddSession(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.Token] = sess
}

func (s *memoryStore) GetSession(token string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[token]
}

func (s *memoryStore) DeleteSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func (s *memoryStore) AddAnnouncement(a *Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.announcements = append(s.announcements, a)
}

func (s *memoryStore) ListAnnouncements() []*Announcement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Announcement(nil), s.announcements...)
}
