package services

type ProfileStore interface {
	FindAccountByEmail(email string) (*Account, error)
	GetAccount(id string) (*Account, error)
	UpdateAccount(a *Account) error
	ListFeedback(accountID string) ([]*Feedback, error)
}

type ProfileService struct {
	store ProfileStore
}

// ProfileView is the read model for a single profile page: the account plus
// its aggregate rating and most recent feedback.
type ProfileView struct {
	Account       *Account    `json:"account"`
	AverageRating float64     `json:"average_rating"`
	ReviewCount   int         `json:"review_count"`
	Recent        []*Feedback `json:"recent_feedback,omitempty"`
}

func NewProfileService(store ProfileStore) *ProfileService {
	return &ProfileService{store: store}
}

// Update applies a merge-update to the caller's own profile. Only the
// whitelisted keys below are recognized; anything else in fields is ignored
// rather than rejected. Identity fields (name, email, credential) never
// change through this path.
func (s *ProfileService) Update(sess *Session, fields map[string]any) (*Account, error) {
	if sess == nil {
		return nil, NewNotAuthenticatedError("login required")
	}
	a, err := s.store.GetAccount(sess.AccountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("account not found")
	}
	for k, v := range fields {
		switch k {
		case "location":
			if str, ok := v.(string); ok {
				a.Location = str
			}
		case "avatar_url":
			if str, ok := v.(string); ok {
				a.AvatarURL = str
			}
		case "skills_offered":
			if list, ok := toStringList(v); ok {
				a.SkillsOffered = list
			}
		case "skills_wanted":
			if list, ok := toStringList(v); ok {
				a.SkillsWanted = list
			}
		case "availability":
			if str, ok := v.(string); ok {
				a.Availability = str
			}
		case "is_public":
			if b, ok := v.(bool); ok {
				a.IsPublic = b
			}
		}
	}
	if err := s.store.UpdateAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

// View assembles the profile page for an account looked up by email.
func (s *ProfileService) View(email string, recentN int) (*ProfileView, error) {
	a, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("account not found")
	}
	fb, err := s.store.ListFeedback(a.ID)
	if err != nil {
		return nil, err
	}
	return &ProfileView{
		Account:       a,
		AverageRating: averageRating(fb),
		ReviewCount:   len(fb),
		Recent:        lastN(fb, recentN),
	}, nil
}

// toStringList accepts either a []string or the []any a JSON decoder
// produces, and normalizes to []string. Mixed-type lists are rejected.
func toStringList(v any) ([]string, bool) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, true
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}
