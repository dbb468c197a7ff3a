package services

import "time"

// stubStore is the in-memory test double shared by the service tests. It
// implements every per-service store interface over plain slices and maps,
// preserving insertion order the way the real store does.
type stubStore struct {
	accounts      []*Account
	byEmail       map[string]*Account
	byID          map[string]*Account
	feedback      map[string][]*Feedback
	requests      []*SwapRequest
	requestsByID  map[string]*SwapRequest
	sessions      map[string]*Session
	announcements []*Announcement
}

func newStubStore() *stubStore {
	return &stubStore{
		byEmail:      map[string]*Account{},
		byID:         map[string]*Account{},
		feedback:     map[string][]*Feedback{},
		requestsByID: map[string]*SwapRequest{},
		sessions:     map[string]*Session{},
	}
}

func (s *stubStore) FindAccountByEmail(email string) (*Account, error) {
	return s.byEmail[email], nil
}

func (s *stubStore) GetAccount(id string) (*Account, error) {
	return s.byID[id], nil
}

func (s *stubStore) AddAccount(a *Account) error {
	if _, exists := s.byEmail[a.Email]; exists {
		return NewDuplicateEmailError("email already registered")
	}
	s.accounts = append(s.accounts, a)
	s.byEmail[a.Email] = a
	s.byID[a.ID] = a
	return nil
}

func (s *stubStore) UpdateAccount(a *Account) error {
	if _, exists := s.byID[a.ID]; !exists {
		return NewNotFoundError("account not found")
	}
	for i, existing := range s.accounts {
		if existing.ID == a.ID {
			s.accounts[i] = a
		}
	}
	s.byID[a.ID] = a
	s.byEmail[a.Email] = a
	return nil
}

func (s *stubStore) ListAccounts() ([]*Account, error) {
	return append([]*Account(nil), s.accounts...), nil
}

func (s *stubStore) AddFeedback(accountID string, f *Feedback) error {
	s.feedback[accountID] = append(s.feedback[accountID], f)
	return nil
}

func (s *stubStore) ListFeedback(accountID string) ([]*Feedback, error) {
	return append([]*Feedback(nil), s.feedback[accountID]...), nil
}

func (s *stubStore) CountFeedback() (int, error) {
	total := 0
	for _, fb := range s.feedback {
		total += len(fb)
	}
	return total, nil
}

func (s *stubStore) AddRequest(r *SwapRequest) error {
	s.requests = append(s.requests, r)
	s.requestsByID[r.ID] = r
	return nil
}

func (s *stubStore) GetRequest(id string) (*SwapRequest, error) {
	return s.requestsByID[id], nil
}

func (s *stubStore) ResolveRequest(id string, status RequestStatus, at time.Time) (bool, error) {
	r := s.requestsByID[id]
	if r == nil || r.Status != StatusPending {
		return false, nil
	}
	r.Status = status
	r.UpdatedAt = at
	return true, nil
}

func (s *stubStore) ListRequests() ([]*SwapRequest, error) {
	return append([]*SwapRequest(nil), s.requests...), nil
}

func (s *stubStore) ListRequestsByRecipient(accountID string) ([]*SwapRequest, error) {
	out := []*SwapRequest{}
	for _, r := range s.requests {
		if r.RecipientID == accountID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) ListRequestsByRequester(accountID string) ([]*SwapRequest, error) {
	out := []*SwapRequest{}
	for _, r := range s.requests {
		if r.RequesterID == accountID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *stubStore) AddSession(sess *Session) error {
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubStore) GetSession(token string) (*Session, error) {
	return s.sessions[token], nil
}

func (s *stubStore) DeleteSession(token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubStore) AddAnnouncement(an *Announcement) error {
	s.announcements = append(s.announcements, an)
	return nil
}

func (s *stubStore) ListAnnouncements() ([]*Announcement, error) {
	return append([]*Announcement(nil), s.announcements...), nil
}

var (
	_ AuthStore      = (*stubStore)(nil)
	_ ProfileStore   = (*stubStore)(nil)
	_ FeedbackStore  = (*stubStore)(nil)
	_ SwapStore      = (*stubStore)(nil)
	_ DirectoryStore = (*stubStore)(nil)
	_ AdminStore     = (*stubStore)(nil)
)

// seedAccount inserts an account directly, bypassing registration.
func (s *stubStore) seedAccount(id, name, email string, offered, wanted []string) *Account {
	a := &Account{
		ID:            id,
		Name:          name,
		Email:         email,
		SkillsOffered: offered,
		SkillsWanted:  wanted,
		IsPublic:      true,
		CreatedAt:     time.Unix(0, 0),
	}
	_ = s.AddAccount(a)
	return a
}

func sessionFor(a *Account) *Session {
	return &Session{Token: "tok-" + a.ID, AccountID: a.ID, Email: a.Email, IsAdmin: a.IsAdmin}
}

func codeOf(err error) ErrorCode {
	if se, ok := AsServiceError(err); ok {
		return se.Code
	}
	return ""
}
