package api

import "time"

type Store interface {
	AddAccount(a *Account) bool
	FindAccountByEmail(email string) *Account
	GetAccount(id string) *Account
	UpdateAccount(a *Account) bool
	ListAccounts() []*Account

	AddFeedback(accountID string, f *Feedback)
	ListFeedback(accountID string) []*Feedback
	CountFeedback() int

	AddRequest(r *SwapRequest)
	GetRequest(id string) *SwapRequest
	ResolveRequest(id, status string, at time.Time) bool
	ListRequests() []*SwapRequest
	ListRequestsByRecipient(accountID string) []*SwapRequest
	ListRequestsByRequester(accountID string) []*SwapRequest

	AddSession(sess *Session)
	GetSession(token string) *Session
	DeleteSession(token string)

	AddAnnouncement(a *Announcement)
	ListAnnouncements() []*Announcement
}

var _ Store = (*memoryStore)(nil)
