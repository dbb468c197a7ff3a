package api

import "github.com/skillwisehq/skillswap/internal/services"

// Conversions between the store's records and the service-layer types. Slices
// are copied so neither side mutates the other's state in place.

func toServiceAccount(a *Account) *services.Account {
	if a == nil {
		return nil
	}
	return &services.Account{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		PassHash:      a.PassHash,
		Location:      a.Location,
		AvatarURL:     a.AvatarURL,
		SkillsOffered: append([]string(nil), a.SkillsOffered...),
		SkillsWanted:  append([]string(nil), a.SkillsWanted...),
		Availability:  a.Availability,
		IsPublic:      a.IsPublic,
		IsAdmin:       a.IsAdmin,
		Suspended:     a.Suspended,
		CreatedAt:     a.CreatedAt,
	}
}

func fromServiceAccount(a *services.Account) *Account {
	if a == nil {
		return nil
	}
	return &Account{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		PassHash:      a.PassHash,
		Location:      a.Location,
		AvatarURL:     a.AvatarURL,
		SkillsOffered: append([]string(nil), a.SkillsOffered...),
		SkillsWanted:  append([]string(nil), a.SkillsWanted...),
		Availability:  a.Availability,
		IsPublic:      a.IsPublic,
		IsAdmin:       a.IsAdmin,
		Suspended:     a.Suspended,
		CreatedAt:     a.CreatedAt,
	}
}

func toServiceAccounts(list []*Account) []*services.Account {
	out := make([]*services.Account, 0, len(list))
	for _, a := range list {
		out = append(out, toServiceAccount(a))
	}
	return out
}

func toServiceFeedback(f *Feedback) *services.Feedback {
	if f == nil {
		return nil
	}
	return &services.Feedback{FromEmail: f.FromEmail, Rating: f.Rating, Comment: f.Comment, CreatedAt: f.CreatedAt}
}

func toServiceFeedbackList(list []*Feedback) []*services.Feedback {
	out := make([]*services.Feedback, 0, len(list))
	for _, f := range list {
		out = append(out, toServiceFeedback(f))
	}
	return out
}

func toServiceRequest(r *SwapRequest) *services.SwapRequest {
	if r == nil {
		return nil
	}
	return &services.SwapRequest{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		RecipientID:    r.RecipientID,
		OfferedSkill:   r.OfferedSkill,
		RequestedSkill: r.RequestedSkill,
		Message:        r.Message,
		Status:         services.RequestStatus(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func fromServiceRequest(r *services.SwapRequest) *SwapRequest {
	if r == nil {
		return nil
	}
	return &SwapRequest{
		ID:             r.ID,
		RequesterID:    r.RequesterID,
		RecipientID:    r.RecipientID,
		OfferedSkill:   r.OfferedSkill,
		RequestedSkill: r.RequestedSkill,
		Message:        r.Message,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toServiceRequests(list []*SwapRequest) []*services.SwapRequest {
	out := make([]*services.SwapRequest, 0, len(list))
	for _, r := range list {
		out = append(out, toServiceRequest(r))
	}
	return out
}

func toServiceSession(sess *Session) *services.Session {
	if sess == nil {
		return nil
	}
	return &services.Session{Token: sess.Token, AccountID: sess.AccountID, Email: sess.Email, IsAdmin: sess.IsAdmin, CreatedAt: sess.CreatedAt}
}

func toServiceAnnouncements(list []*Announcement) []*services.Announcement {
	out := make([]*services.Announcement, 0, len(list))
	for _, a := range list {
		out = append(out, &services.Announcement{Message: a.Message, CreatedAt: a.CreatedAt})
	}
	return out
}
