package services

import "time"

type SwapStore interface {
	GetAccount(id string) (*Account, error)
	FindAccountByEmail(email string) (*Account, error)
	AddRequest(r *SwapRequest) error
	GetRequest(id string) (*SwapRequest, error)
	// ResolveRequest transitions the request out of Pending. It returns false
	// if the request was already in a terminal state, so exactly one caller
	// wins a race to resolve.
	ResolveRequest(id string, status RequestStatus, at time.Time) (bool, error)
	ListRequestsByRecipient(accountID string) ([]*SwapRequest, error)
	ListRequestsByRequester(accountID string) ([]*SwapRequest, error)
}

type SwapService struct {
	store SwapStore
	now   func() time.Time
	idGen func(prefix string, n int) string
}

func NewSwapService(store SwapStore) *SwapService {
	return &SwapService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
		idGen: func(prefix string, n int) string { return prefix + shortID(n) },
	}
}

// Create proposes a swap: the caller teaches offeredSkill, the recipient
// teaches requestedSkill. Validations run in a fixed order before anything
// is written, and the first violation decides the error: recipient exists,
// recipient not suspended, caller owns offeredSkill, recipient offers
// requestedSkill. Skill membership is checked against the accounts' own
// lists, not the catalog. Nothing stops the same pair proposing the same
// swap twice.
func (s *SwapService) Create(sess *Session, recipientEmail, offeredSkill, requestedSkill, message string) (*SwapRequest, error) {
	if sess == nil {
		return nil, NewNotAuthenticatedError("login required")
	}
	recipient, err := s.store.FindAccountByEmail(recipientEmail)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, NewRecipientNotFoundError("recipient not found")
	}
	if recipient.Suspended {
		return nil, NewRecipientBannedError("recipient account is suspended")
	}
	requester, err := s.store.GetAccount(sess.AccountID)
	if err != nil {
		return nil, err
	}
	if requester == nil {
		return nil, NewNotFoundError("account not found")
	}
	if !requester.OffersSkill(offeredSkill) {
		return nil, NewSkillNotOwnedError("you do not offer this skill")
	}
	if !recipient.OffersSkill(requestedSkill) {
		return nil, NewSkillNotOfferedError("recipient does not offer this skill")
	}
	now := s.now()
	r := &SwapRequest{
		ID:             s.idGen("r", 12),
		RequesterID:    requester.ID,
		RecipientID:    recipient.ID,
		OfferedSkill:   offeredSkill,
		RequestedSkill: requestedSkill,
		Message:        message,
		Status:         StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.AddRequest(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Respond resolves a pending request. Only the recipient may respond, and a
// request already in a terminal state stays there: a second response fails
// with already_resolved and changes nothing.
func (s *SwapService) Respond(sess *Session, requestID string, accept bool) (*SwapRequest, error) {
	if sess == nil {
		return nil, NewNotAuthenticatedError("login required")
	}
	r, err := s.store.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, NewNotFoundError("request not found")
	}
	if r.RecipientID != sess.AccountID {
		return nil, NewNotRecipientError("only the recipient may respond")
	}
	if r.Status.Terminal() {
		return nil, NewAlreadyResolvedError("request already resolved")
	}
	status := StatusRejected
	if accept {
		status = StatusAccepted
	}
	ok, err := s.store.ResolveRequest(r.ID, status, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, NewAlreadyResolvedError("request already resolved")
	}
	return s.store.GetRequest(r.ID)
}

// ListFor returns the caller's incoming and outgoing requests, each in
// creation order.
func (s *SwapService) ListFor(sess *Session) (incoming, outgoing []*SwapRequest, err error) {
	if sess == nil {
		return nil, nil, NewNotAuthenticatedError("login required")
	}
	incoming, err = s.store.ListRequestsByRecipient(sess.AccountID)
	if err != nil {
		return nil, nil, err
	}
	outgoing, err = s.store.ListRequestsByRequester(sess.AccountID)
	if err != nil {
		return nil, nil, err
	}
	return incoming, outgoing, nil
}
