package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yogawp/todolist-api/internal/domain/entity"
	repo "github.com/yogawp/todolist-api/internal/domain/repository"
)

// In-memory store fakes backing the service tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	for _, existing := range r.users {
		if existing.Email == u.Email && existing.ID != u.ID {
			return repo.ErrDuplicate
		}
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeTodoRepo struct {
	mu    sync.Mutex
	seq   int
	todos map[string]*entity.Todo
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: map[string]*entity.Todo{}}
}

func (r *fakeTodoRepo) Create(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = uuid.NewString()
	// strictly increasing timestamps keep newest-first ordering stable
	t.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Microsecond)
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.todos[t.ID] = &cp
	return nil
}

func (r *fakeTodoRepo) GetByID(_ context.Context, id string) (*entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.todos[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTodoRepo) List(_ context.Context) ([]entity.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Todo, 0, len(r.todos))
	for _, t := range r.todos {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeTodoRepo) Update(_ context.Context, t *entity.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[t.ID]; !ok {
		return repo.ErrNotFound
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.todos[t.ID] = &cp
	return nil
}

func (r *fakeTodoRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.todos[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.todos, id)
	return nil
}

func (r *fakeTodoRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.todos)
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*entity.PersonalAccessToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*entity.PersonalAccessToken{}}
}

func (r *fakeTokenRepo) Create(_ context.Context, t *entity.PersonalAccessToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	cp := *t
	r.tokens[t.ID] = &cp
	return nil
}

func (r *fakeTokenRepo) GetByID(_ context.Context, id string) (*entity.PersonalAccessToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTokenRepo) TouchLastUsed(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if t, ok := r.tokens[id]; ok {
		now := time.Now()
		t.LastUsedAt = &now
	}
	return nil
}

func (r *fakeTokenRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[id]; !ok {
		return repo.ErrNotFound
	}
	delete(r.tokens, id)
	return nil
}

func (r *fakeTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	entries []entity.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo { return &fakeAuditRepo{} }

func (r *fakeAuditRepo) Insert(_ context.Context, a *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, *a)
	return nil
}

func (r *fakeAuditRepo) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
	byUser   map[string]string
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]*entity.Session{}, byUser: map[string]string{}}
}

func (s *fakeSessionStore) Create(_ context.Context, sess *entity.Session, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.sessions[sess.ID] = &cp
	if sess.UserID != "" {
		s.byUser[sess.UserID] = sess.ID
	}
	return nil
}

func (s *fakeSessionStore) Get(_ context.Context, sid string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sid]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *sess
	return &cp, nil
}

func (s *fakeSessionStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sid]; ok && sess.UserID != "" {
		delete(s.byUser, sess.UserID)
	}
	delete(s.sessions, sid)
	return nil
}

func (s *fakeSessionStore) DeleteByUser(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sid, ok := s.byUser[userID]; ok {
		delete(s.sessions, sid)
		delete(s.byUser, userID)
	}
	return nil
}

func (s *fakeSessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
