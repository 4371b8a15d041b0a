package users

import (
	"context"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"cema-admin/internal/directory"
	"cema-admin/internal/domain"
	"cema-admin/internal/idgen"
	"cema-admin/internal/state"
)

// Directory is the narrow surface of the remote user directory. None of
// the write calls guarantee their effect is visible on a later List; the
// service only uses reported success as permission to commit locally.
type Directory interface {
	Create(ctx context.Context, in directory.CreateRequest) error
	Update(ctx context.Context, id int64, in directory.UpdateRequest) error
	PatchRole(ctx context.Context, id int64, role string) error
	Delete(ctx context.Context, id int64) error
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service applies user mutations optimistically: validate locally, confirm
// against the directory, and commit to the in-memory collection only on
// success. A failed remote call aborts the mutation with no retry and no
// offline queue. The user collection is never persisted to the store; the
// directory is its source of truth at the next session start.
type Service struct {
	tree   *state.Tree
	dir    Directory
	ids    idgen.Generator
	logger *log.Logger
	now    func() time.Time
}

func New(tree *state.Tree, dir Directory, ids idgen.Generator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if ids == nil {
		ids = idgen.Sequential{}
	}
	return &Service{tree: tree, dir: dir, ids: ids, logger: logger, now: time.Now}
}

// CreateInput carries the add-user form. The password is required by the
// form but never stored: the account record has no credential field and
// the directory mock accepts none.
type CreateInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

type UpdateInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Service) List() []domain.UserAccount {
	return s.tree.Snapshot().Users
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.UserAccount, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = domain.RoleClient
	}
	if name == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrValidation)
	}
	if role != domain.RoleAdmin && role != domain.RoleClient {
		return nil, fmt.Errorf("unknown role %q: %w", role, domain.ErrValidation)
	}
	if s.emailTaken(email, 0) {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrValidation)
	}

	first, last := splitName(name)
	if err := s.dir.Create(ctx, directory.CreateRequest{
		FirstName: first,
		LastName:  last,
		Email:     email,
		Role:      role,
	}); err != nil {
		s.logger.Printf("users: remote create aborted local mutation: %v", err)
		return nil, err
	}

	s.tree.Lock()
	defer s.tree.Unlock()
	ids := make([]int64, len(s.tree.Users))
	for i, u := range s.tree.Users {
		ids[i] = u.ID
	}
	u := domain.UserAccount{
		ID:       s.ids.Next(ids),
		Name:     name,
		Email:    email,
		Role:     role,
		JoinDate: s.now().UTC().Format("2006-01-02"),
		Status:   "active",
	}
	s.tree.Users = append(s.tree.Users, u)
	return &u, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.UserAccount, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	role := strings.TrimSpace(in.Role)
	if name == "" || email == "" {
		return nil, fmt.Errorf("name and email are required: %w", domain.ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("invalid email format: %w", domain.ErrValidation)
	}
	if !s.exists(id) {
		return nil, nil
	}
	if s.emailTaken(email, id) {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrValidation)
	}

	first, last := splitName(name)
	if err := s.dir.Update(ctx, id, directory.UpdateRequest{
		FirstName: first,
		LastName:  last,
		Email:     email,
	}); err != nil {
		s.logger.Printf("users: remote update aborted local mutation: %v", err)
		return nil, err
	}

	// Commit. The user may have vanished while the call was in flight; in
	// that case there is nothing to update and the commit is dropped.
	s.tree.Lock()
	defer s.tree.Unlock()
	for i := range s.tree.Users {
		if s.tree.Users[i].ID != id {
			continue
		}
		s.tree.Users[i].Name = name
		s.tree.Users[i].Email = email
		if role == domain.RoleAdmin || role == domain.RoleClient {
			s.tree.Users[i].Role = role
		}
		out := s.tree.Users[i]
		return &out, nil
	}
	return nil, nil
}

// ToggleRole flips a user between admin and client, confirmed against the
// directory first.
func (s *Service) ToggleRole(ctx context.Context, id int64, confirm bool) (*domain.UserAccount, error) {
	current, ok := s.get(id)
	if !ok {
		return nil, nil
	}
	if !confirm {
		return nil, domain.ErrConfirmationRequired
	}

	newRole := domain.RoleAdmin
	if current.Role == domain.RoleAdmin {
		newRole = domain.RoleClient
	}
	if err := s.dir.PatchRole(ctx, id, newRole); err != nil {
		s.logger.Printf("users: remote role patch aborted local mutation: %v", err)
		return nil, err
	}

	s.tree.Lock()
	defer s.tree.Unlock()
	for i := range s.tree.Users {
		if s.tree.Users[i].ID != id {
			continue
		}
		s.tree.Users[i].Role = newRole
		out := s.tree.Users[i]
		return &out, nil
	}
	return nil, nil
}

func (s *Service) Delete(ctx context.Context, id int64, confirm bool) error {
	if _, ok := s.get(id); !ok {
		return nil
	}
	if !confirm {
		return domain.ErrConfirmationRequired
	}

	if err := s.dir.Delete(ctx, id); err != nil {
		s.logger.Printf("users: remote delete aborted local mutation: %v", err)
		return err
	}

	s.tree.Lock()
	defer s.tree.Unlock()
	for i := range s.tree.Users {
		if s.tree.Users[i].ID != id {
			continue
		}
		s.tree.Users = append(s.tree.Users[:i], s.tree.Users[i+1:]...)
		return nil
	}
	return nil
}

func (s *Service) get(id int64) (domain.UserAccount, bool) {
	for _, u := range s.tree.Snapshot().Users {
		if u.ID == id {
			return u, true
		}
	}
	return domain.UserAccount{}, false
}

func (s *Service) exists(id int64) bool {
	_, ok := s.get(id)
	return ok
}

func (s *Service) emailTaken(email string, selfID int64) bool {
	for _, u := range s.tree.Snapshot().Users {
		if strings.EqualFold(u.Email, email) && u.ID != selfID {
			return true
		}
	}
	return false
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
