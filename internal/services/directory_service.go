package services

import "strings"

type DirectoryStore interface {
	// ListAccounts returns every account in directory insertion order.
	ListAccounts() ([]*Account, error)
	ListAnnouncements() ([]*Announcement, error)
}

// DirectoryService serves the unauthenticated read side of the platform:
// browsing and searching profiles. Private, suspended, and admin accounts
// never show up here, whatever the query.
type DirectoryService struct {
	store DirectoryStore
}

func NewDirectoryService(store DirectoryStore) *DirectoryService {
	return &DirectoryService{store: store}
}

func listable(a *Account) bool {
	return a.IsPublic && !a.Suspended && !a.IsAdmin
}

// SearchBySkill matches query as a case-insensitive substring of any skill
// the account offers.
func (s *DirectoryService) SearchBySkill(query string) ([]*Account, error) {
	accounts, err := s.store.ListAccounts()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := []*Account{}
	for _, a := range accounts {
		if !listable(a) {
			continue
		}
		for _, skill := range a.SkillsOffered {
			if strings.Contains(strings.ToLower(skill), q) {
				out = append(out, a)
				break
			}
		}
	}
	return out, nil
}

// SearchByAvailability matches query as a case-insensitive substring of the
// account's availability text.
func (s *DirectoryService) SearchByAvailability(query string) ([]*Account, error) {
	accounts, err := s.store.ListAccounts()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	out := []*Account{}
	for _, a := range accounts {
		if listable(a) && strings.Contains(strings.ToLower(a.Availability), q) {
			out = append(out, a)
		}
	}
	return out, nil
}

// PublicProfiles pages through listable accounts in insertion order. Pages
// are 1-based; a page past the end is empty, not an error.
func (s *DirectoryService) PublicProfiles(page, pageSize int) ([]*Account, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	accounts, err := s.store.ListAccounts()
	if err != nil {
		return nil, err
	}
	visible := []*Account{}
	for _, a := range accounts {
		if listable(a) {
			visible = append(visible, a)
		}
	}
	start := (page - 1) * pageSize
	if start >= len(visible) {
		return []*Account{}, nil
	}
	end := start + pageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end], nil
}

// Announcements lists the platform announcement log, oldest first.
func (s *DirectoryService) Announcements() ([]*Announcement, error) {
	return s.store.ListAnnouncements()
}
