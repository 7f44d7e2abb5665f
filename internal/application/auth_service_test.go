package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	"github.com/yogawp/todolist-api/pkg/helpers"
)

type authFixture struct {
	svc      *AuthService
	users    *fakeUserRepo
	tokens   *fakeTokenRepo
	sessions *fakeSessionStore
	audit    *fakeAuditRepo
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	f := &authFixture{
		users:    newFakeUserRepo(),
		tokens:   newFakeTokenRepo(),
		sessions: newFakeSessionStore(),
		audit:    newFakeAuditRepo(),
	}
	f.svc = NewAuthService(f.users, f.tokens, f.sessions, f.audit, nil, nil, time.Hour)
	return f
}

func (f *authFixture) seedUser(t *testing.T, email, password string, role entity.Role) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &entity.User{Name: "Test User", Email: email, Password: hash, Role: role}
	if err := f.users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestLoginSuccess(t *testing.T) {
	f := newAuthFixture(t)
	seeded := f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)
	meta := RequestMeta{IP: "203.0.113.9", UserAgent: "go-test"}

	u, sess, plain, err := f.svc.Login(context.Background(), "demo@example.com", "password123", meta)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != seeded.ID {
		t.Fatalf("got user %s, want %s", u.ID, seeded.ID)
	}
	if sess == nil || sess.UserID != seeded.ID {
		t.Fatalf("session not bound to user: %+v", sess)
	}
	if sess.CSRFToken == "" {
		t.Fatal("session missing anti-forgery token")
	}
	if plain == "" {
		t.Fatal("no bearer token returned")
	}
	// the plaintext credential must resolve back to the same user
	resolved, tok, err := f.svc.ResolveToken(context.Background(), plain)
	if err != nil {
		t.Fatalf("resolve issued token: %v", err)
	}
	if resolved.ID != seeded.ID {
		t.Fatalf("token resolved to %s, want %s", resolved.ID, seeded.ID)
	}
	if tok.Name != DefaultTokenName {
		t.Fatalf("token name = %q, want %q", tok.Name, DefaultTokenName)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)

	_, _, _, err := f.svc.Login(context.Background(), "demo@example.com", "nope-nope", RequestMeta{})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if n := f.tokens.count(); n != 0 {
		t.Fatalf("tokens issued on failed login: %d", n)
	}
	actions := f.audit.actions()
	if len(actions) != 1 || actions[0] != entity.AuditLoginFailed {
		t.Fatalf("audit actions = %v, want [login_failed]", actions)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	_, _, _, err := f.svc.Login(context.Background(), "ghost@example.com", "whatever1", RequestMeta{})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginRotatesSessionID(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)

	_, first, _, err := f.svc.Login(context.Background(), "demo@example.com", "password123", RequestMeta{})
	if err != nil {
		t.Fatalf("first login: %v", err)
	}
	_, second, _, err := f.svc.Login(context.Background(), "demo@example.com", "password123", RequestMeta{})
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("session id not rotated across logins")
	}
	// the first session must be gone
	if _, _, err := f.svc.ResolveSession(context.Background(), first.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("stale session still resolves: err = %v", err)
	}
	if _, _, err := f.svc.ResolveSession(context.Background(), second.ID); err != nil {
		t.Fatalf("fresh session rejected: %v", err)
	}
}

func TestLogoutKillsSessionButNotTokens(t *testing.T) {
	f := newAuthFixture(t)
	f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)
	meta := RequestMeta{IP: "203.0.113.9"}

	_, sess, plain, err := f.svc.Login(context.Background(), "demo@example.com", "password123", meta)
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	fresh, err := f.svc.Logout(context.Background(), sess, meta)
	if err != nil {
		t.Fatalf("logout: %v", err)
	}
	if fresh.ID == sess.ID {
		t.Fatal("logout returned the same session id")
	}
	if fresh.Authenticated() {
		t.Fatal("post-logout session still carries a user")
	}
	if fresh.CSRFToken == sess.CSRFToken {
		t.Fatal("anti-forgery token not rotated on logout")
	}

	if _, _, err := f.svc.ResolveSession(context.Background(), sess.ID); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("dead session still resolves: err = %v", err)
	}
	// the bearer token is an independent guard and must keep working
	if _, _, err := f.svc.ResolveToken(context.Background(), plain); err != nil {
		t.Fatalf("bearer token rejected after logout: %v", err)
	}
}

func TestResolveSessionAnonymous(t *testing.T) {
	f := newAuthFixture(t)
	anon, err := f.svc.AnonymousSession(context.Background(), RequestMeta{})
	if err != nil {
		t.Fatalf("anonymous session: %v", err)
	}
	sess, u, err := f.svc.ResolveSession(context.Background(), anon.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if u != nil {
		t.Fatalf("anonymous session resolved a user: %+v", u)
	}
	if sess.CSRFToken == "" {
		t.Fatal("anonymous session has no anti-forgery token")
	}
}

func TestResolveTokenRejections(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)
	plain, err := f.svc.IssueNamedToken(context.Background(), u, "ci", RequestMeta{})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	id, _, err := helpers.SplitToken(plain)
	if err != nil {
		t.Fatalf("split: %v", err)
	}

	cases := []struct {
		name  string
		plain string
	}{
		{"malformed", "not-a-token"},
		{"empty", ""},
		{"non-uuid id", "abc|deadbeef"},
		{"unknown id", "df6f3924-6a5a-4b35-8a0a-21f1182e71f0|deadbeef"},
		{"wrong secret", helpers.ComposeToken(id, "0000000000000000000000000000000000000000")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := f.svc.ResolveToken(context.Background(), tc.plain); !errors.Is(err, ErrUnauthenticated) {
				t.Fatalf("err = %v, want ErrUnauthenticated", err)
			}
		})
	}

	// the legitimate credential still passes
	if _, _, err := f.svc.ResolveToken(context.Background(), plain); err != nil {
		t.Fatalf("valid token rejected: %v", err)
	}
}

func TestResolveTokenStampsLastUsed(t *testing.T) {
	f := newAuthFixture(t)
	u := f.seedUser(t, "demo@example.com", "password123", entity.RoleUser)
	plain, err := f.svc.IssueNamedToken(context.Background(), u, "ci", RequestMeta{})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	_, tok, err := f.svc.ResolveToken(context.Background(), plain)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	stored, err := f.tokens.GetByID(context.Background(), tok.ID)
	if err != nil {
		t.Fatalf("get stored token: %v", err)
	}
	if stored.LastUsedAt == nil {
		t.Fatal("last_used_at not stamped")
	}
}

func TestRegister(t *testing.T) {
	f := newAuthFixture(t)

	u, sess, err := f.svc.Register(context.Background(), "New User", "new@example.com", "password123", RequestMeta{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Role != entity.RoleUser {
		t.Fatalf("role = %q, want %q", u.Role, entity.RoleUser)
	}
	if sess == nil || sess.UserID != u.ID {
		t.Fatalf("register did not open a session: %+v", sess)
	}
	// password must be stored hashed, and the account must be able to log in
	if _, err := f.svc.Authenticate(context.Background(), "new@example.com", "password123"); err != nil {
		t.Fatalf("authenticate after register: %v", err)
	}

	_, _, err = f.svc.Register(context.Background(), "Dup", "new@example.com", "password123", RequestMeta{})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("duplicate register err = %v, want ErrEmailTaken", err)
	}
}
