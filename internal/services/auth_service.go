package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type AuthStore interface {
	FindAccountByEmail(email string) (*Account, error)
	AddAccount(a *Account) error
	AddSession(s *Session) error
	GetSession(token string) (*Session, error)
	DeleteSession(token string) error
}

// TokenSigner mints the caller-facing token for a session.
type TokenSigner func(accountID, email string, admin bool, ttl time.Duration) (string, error)

type AuthService struct {
	store     AuthStore
	now       func() time.Time
	idGen     func(prefix string, n int) string
	signToken TokenSigner
	tokenTTL  time.Duration
}

func NewAuthService(store AuthStore, signer TokenSigner) *AuthService {
	return &AuthService{
		store:     store,
		now:       func() time.Time { return time.Now().UTC() },
		idGen:     func(prefix string, n int) string { return prefix + shortID(n) },
		signToken: signer,
		tokenTTL:  30 * 24 * time.Hour,
	}
}

// Register creates an ordinary account. Email equality is exact: the address
// is the external lookup key and is stored as given.
func (s *AuthService) Register(name, email, password string) (*Account, error) {
	return s.register(name, email, password, false)
}

// RegisterAdmin creates an elevated account. Only platform bootstrap calls
// this; there is no registration path to it.
func (s *AuthService) RegisterAdmin(name, email, password string) (*Account, error) {
	return s.register(name, email, password, true)
}

func (s *AuthService) register(name, email, password string, admin bool) (*Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("name/email/password required")
	}
	existing, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, NewDuplicateEmailError("email already registered")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a := &Account{
		ID:            s.idGen("a", 12),
		Name:          name,
		Email:         email,
		PassHash:      hash,
		SkillsOffered: []string{},
		SkillsWanted:  []string{},
		IsPublic:      true,
		IsAdmin:       admin,
		CreatedAt:     s.now(),
	}
	if err := s.store.AddAccount(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Login checks existence, then suspension, then the credential, in that
// order. A suspended account with the right password still reports
// suspended, never bad_credential.
func (s *AuthService) Login(email, password string) (*Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, NewInvalidError("email/password required")
	}
	a, err := s.store.FindAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, NewNotFoundError("account not found")
	}
	if a.Suspended {
		return nil, NewSuspendedError("account suspended")
	}
	if err := bcrypt.CompareHashAndPassword(a.PassHash, []byte(password)); err != nil {
		return nil, NewBadCredentialError("invalid password")
	}
	if s.signToken == nil {
		return nil, NewInvalidError("token signer not configured")
	}
	token, err := s.signToken(a.ID, a.Email, a.IsAdmin, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	sess := &Session{
		Token:     token,
		AccountID: a.ID,
		Email:     a.Email,
		IsAdmin:   a.IsAdmin,
		CreatedAt: s.now(),
	}
	if err := s.store.AddSession(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Logout revokes the session for token. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.store.DeleteSession(token)
}

// Resolve maps a caller token back to its live session. A missing or revoked
// session yields not_authenticated; every gated operation goes through here.
func (s *AuthService) Resolve(token string) (*Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, NewNotAuthenticatedError("login required")
	}
	sess, err := s.store.GetSession(token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, NewNotAuthenticatedError("login required")
	}
	return sess, nil
}

func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}
