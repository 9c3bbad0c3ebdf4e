package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/finance-system/internal/core/domain"
	"github.com/fintrack/finance-system/internal/core/ports"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username || u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	stored := cloneUser(user)
	stored.ID = user.Username
	r.users[stored.Username] = stored
	return cloneUser(stored), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) UpdateCreditCardLimit(_ context.Context, userID string, limit float64) error {
	for _, u := range r.users {
		if u.ID == userID {
			u.CreditCardLimit = &limit
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubRoleRepo struct{}

func (stubRoleRepo) GetOrCreate(_ context.Context, name string) (*domain.Role, error) {
	return &domain.Role{ID: "role_1", Name: name}, nil
}

type stubThrottle struct {
	attempts int
	max      int
	resets   int
}

func (t *stubThrottle) Allow(_ context.Context, _ string) (bool, error) {
	t.attempts++
	return t.max <= 0 || t.attempts <= t.max, nil
}

func (t *stubThrottle) Reset(_ context.Context, _ string) error {
	t.resets++
	return nil
}

func newAuthService(repo *stubUserRepo, throttle ports.LoginThrottle) *AuthService {
	tokens := NewTokenService("secret", time.Hour)
	return NewAuthService(repo, stubRoleRepo{}, tokens, throttle, zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw123456")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pw123456" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw123456")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if len(user.Roles) != 1 || user.Roles[0] != domain.RoleUser {
		t.Fatalf("expected roles [%s], got %v", domain.RoleUser, user.Roles)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), nil)

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pw"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pw"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pw123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "other@example.com", "pw123456"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate username, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "robert", "bob@example.com", "pw123456"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists for duplicate email, got %v", err)
	}
}

func TestAuthService_Login_ByUsernameAndEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret!"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for _, identifier := range []string{"carol", "carol@example.com"} {
		token, user, err := svc.Login(context.Background(), identifier, "s3cret!")
		if err != nil {
			t.Fatalf("login with %q failed: %v", identifier, err)
		}
		if user.Username != "carol" {
			t.Fatalf("unexpected user: %+v", user)
		}

		// The token subject is the canonical username even when the
		// user logged in with an email.
		subject, err := svc.tokens.Subject(token)
		if err != nil {
			t.Fatalf("token subject: %v", err)
		}
		if subject != "carol" {
			t.Fatalf("expected subject carol, got %q", subject)
		}
	}
}

func TestAuthService_Login_UniformFailure(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, nil)

	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPw := svc.Login(context.Background(), "dave", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost", "anything")

	// Wrong password and unknown user must be indistinguishable.
	if wrongPw != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPw)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknown)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{max: 3}
	svc := newAuthService(repo, throttle)

	if _, err := svc.Register(context.Background(), "erin", "erin@example.com", "pw123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, _, err := svc.Login(context.Background(), "erin", "wrong"); err != domain.ErrInvalidCredentials {
			t.Fatalf("attempt %d: expected ErrInvalidCredentials, got %v", i, err)
		}
	}
	if _, _, err := svc.Login(context.Background(), "erin", "pw123456"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_ResetsThrottleOnSuccess(t *testing.T) {
	repo := newStubUserRepo()
	throttle := &stubThrottle{max: 5}
	svc := newAuthService(repo, throttle)

	if _, err := svc.Register(context.Background(), "frank", "frank@example.com", "pw123456"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "frank", "pw123456"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after successful login, got %d", throttle.resets)
	}
}
