package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	repo "github.com/yogawp/todolist-api/internal/domain/repository"
	"github.com/yogawp/todolist-api/pkg/helpers"
	"github.com/yogawp/todolist-api/pkg/mailer"
)

// DefaultTokenName matches the token minted implicitly at login.
const DefaultTokenName = "API Token"

// RequestMeta carries client attribution for audit rows and alerts.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// AuthService is the session/token authenticator: it validates
// credentials, owns the session lifecycle and issues bearer tokens.
// Session and bearer resolution stay independent guards; killing one
// never touches the other.
type AuthService struct {
	Users      repo.UserRepository
	Tokens     repo.TokenRepository
	Sessions   repo.SessionStore
	Audit      repo.AuditRepository
	Pub        *helpers.RabbitPublisher
	Logger     *logrus.Logger
	SessionTTL time.Duration
}

func NewAuthService(users repo.UserRepository, tokens repo.TokenRepository, sessions repo.SessionStore, audit repo.AuditRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger, sessionTTL time.Duration) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = entity.DefaultSessionTTL
	}
	return &AuthService{
		Users:      users,
		Tokens:     tokens,
		Sessions:   sessions,
		Audit:      audit,
		Pub:        pub,
		Logger:     logger,
		SessionTTL: sessionTTL,
	}
}

// Authenticate validates email/password without issuing anything.
// bcrypt's comparison is constant-time.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Login authenticates and, on success, rotates the session identifier
// (any pre-existing session for the user is destroyed first), issues a
// fresh unscoped bearer token, and returns the plaintext token once.
func (s *AuthService) Login(ctx context.Context, email, password string, meta RequestMeta) (*entity.User, *entity.Session, string, error) {
	u, err := s.Authenticate(ctx, email, password)
	if err != nil {
		s.audit(ctx, "", email, entity.AuditLoginFailed, meta, nil)
		return nil, nil, "", err
	}

	// Session-fixation defense: never reuse a pre-login identifier.
	if err := s.Sessions.DeleteByUser(ctx, u.ID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("stale session cleanup failed")
	}

	sess, err := s.createSession(ctx, u.ID, meta)
	if err != nil {
		return nil, nil, "", err
	}

	plain, err := s.issueToken(ctx, u, DefaultTokenName)
	if err != nil {
		return nil, nil, "", err
	}

	s.audit(ctx, u.ID, u.Email, entity.AuditLogin, meta, nil)
	s.notifyLogin(ctx, u, meta)

	return u, sess, plain, nil
}

// Logout terminates only the web session: the session entry dies, and
// a fresh anonymous session replaces it so the anti-forgery token is
// rotated. Bearer tokens issued to the same user keep working.
func (s *AuthService) Logout(ctx context.Context, sess *entity.Session, meta RequestMeta) (*entity.Session, error) {
	if err := s.Sessions.Delete(ctx, sess.ID); err != nil {
		return nil, err
	}
	fresh, err := s.createSession(ctx, "", meta)
	if err != nil {
		return nil, err
	}
	s.audit(ctx, sess.UserID, "", entity.AuditLogout, meta, nil)
	return fresh, nil
}

// ResolveSession maps a session id back to its user. The returned user
// is nil for anonymous sessions.
func (s *AuthService) ResolveSession(ctx context.Context, sid string) (*entity.Session, *entity.User, error) {
	sess, err := s.Sessions.Get(ctx, sid)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	if !sess.Authenticated() {
		return sess, nil, nil
	}
	u, err := s.Users.GetByID(ctx, sess.UserID)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	return sess, u, nil
}

// ResolveToken maps a bearer credential "<id>|<secret>" back to its
// user, stamping last_used_at on the way through.
func (s *AuthService) ResolveToken(ctx context.Context, plain string) (*entity.User, *entity.PersonalAccessToken, error) {
	id, secret, err := helpers.SplitToken(plain)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, ErrUnauthenticated
	}
	tok, err := s.Tokens.GetByID(ctx, id)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	if !helpers.VerifyTokenSecret(tok.TokenHash, secret) {
		return nil, nil, ErrUnauthenticated
	}
	u, err := s.Users.GetByID(ctx, tok.UserID)
	if err != nil {
		return nil, nil, ErrUnauthenticated
	}
	if err := s.Tokens.TouchLastUsed(ctx, tok.ID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("token_id", tok.ID).Warn("touch last_used_at failed")
	}
	return u, tok, nil
}

// IssueNamedToken mints an additional bearer token for an already
// authenticated actor; no password check.
func (s *AuthService) IssueNamedToken(ctx context.Context, actor *entity.User, name string, meta RequestMeta) (string, error) {
	plain, err := s.issueToken(ctx, actor, name)
	if err != nil {
		return "", err
	}
	s.audit(ctx, actor.ID, actor.Email, entity.AuditTokenIssued, meta, map[string]any{"name": name})
	return plain, nil
}

// Register creates a self-service account (role is always "user") and
// logs it in with a fresh session.
func (s *AuthService) Register(ctx context.Context, name, email, password string, meta RequestMeta) (*entity.User, *entity.Session, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}
	u := &entity.User{Name: name, Email: email, Password: hash, Role: entity.RoleUser}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, nil, ErrEmailTaken
		}
		return nil, nil, err
	}

	sess, err := s.createSession(ctx, u.ID, meta)
	if err != nil {
		return nil, nil, err
	}
	s.audit(ctx, u.ID, u.Email, entity.AuditRegister, meta, nil)
	return u, sess, nil
}

// AnonymousSession backs GET /token for clients without a session yet.
func (s *AuthService) AnonymousSession(ctx context.Context, meta RequestMeta) (*entity.Session, error) {
	return s.createSession(ctx, "", meta)
}

func (s *AuthService) createSession(ctx context.Context, userID string, meta RequestMeta) (*entity.Session, error) {
	csrf, err := helpers.RandomHex(20)
	if err != nil {
		return nil, err
	}
	sess := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CSRFToken: csrf,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		CreatedAt: time.Now(),
	}
	if err := s.Sessions.Create(ctx, sess, s.SessionTTL); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *AuthService) issueToken(ctx context.Context, u *entity.User, name string) (string, error) {
	secret, hash, err := helpers.NewTokenSecret()
	if err != nil {
		return "", err
	}
	tok := &entity.PersonalAccessToken{
		UserID:    u.ID,
		Name:      name,
		Abilities: entity.AbilityAll,
		TokenHash: hash,
	}
	if err := s.Tokens.Create(ctx, tok); err != nil {
		return "", err
	}
	return helpers.ComposeToken(tok.ID, secret), nil
}

func (s *AuthService) audit(ctx context.Context, userID, email, action string, meta RequestMeta, md map[string]any) {
	if s.Audit == nil {
		return
	}
	err := s.Audit.Insert(ctx, &entity.AuditLog{
		UserID:    userID,
		Email:     email,
		Action:    action,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
		Metadata:  md,
	})
	if err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("action", action).Warn("audit insert failed")
	}
}

func (s *AuthService) notifyLogin(ctx context.Context, u *entity.User, meta RequestMeta) {
	if s.Pub == nil {
		return
	}
	job := mailer.NewLoginAlertJob(u.Email, u.Name, meta.IP, meta.UserAgent, time.Now())
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", u.ID).Warn("login alert enqueue failed")
	}
}
