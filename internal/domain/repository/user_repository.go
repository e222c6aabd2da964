package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"bookvault/internal/common"
	"bookvault/internal/common/security"
	"bookvault/internal/domain/model"
)

type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// credentialRecord is the on-disk shape of one account. The file holds a
// username-keyed map of these records and is rewritten in full on every
// mutation.
type credentialRecord struct {
	PasswordHash string   `json:"password_hash"`
	Roles        []string `json:"roles"`
}

type fileUserRepository struct {
	path  string
	mu    sync.RWMutex
	users map[string]*model.User
}

// NewFileUserRepository loads the credential file at path. A missing or
// malformed file is replaced by the two seeded default accounts, which are
// persisted immediately so the file exists for subsequent boots.
func NewFileUserRepository(path string) (UserRepository, error) {
	r := &fileUserRepository{
		path:  path,
		users: make(map[string]*model.User),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *fileUserRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err == nil {
		var records map[string]credentialRecord
		if jsonErr := json.Unmarshal(data, &records); jsonErr == nil {
			for username, rec := range records {
				r.users[username] = &model.User{
					Username:     username,
					PasswordHash: rec.PasswordHash,
					Roles:        rec.Roles,
				}
			}
			return nil
		}
		log.Printf("credential file %s is malformed, reseeding defaults", r.path)
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := r.seedDefaults(); err != nil {
		return err
	}
	return r.save()
}

// seedDefaults installs the two first-boot accounts. Note the admin account
// carries the user role explicitly; membership is never inferred.
func (r *fileUserRepository) seedDefaults() error {
	defaults := []struct {
		username string
		password string
		roles    []string
	}{
		{"user1", "password123", []string{model.RoleUser}},
		{"admin", "password456", []string{model.RoleAdmin, model.RoleUser}},
	}
	r.users = make(map[string]*model.User, len(defaults))
	for _, d := range defaults {
		hash, err := security.HashPassword(d.password)
		if err != nil {
			return common.Errorf("failed to hash seed password for %s: %w", d.username, err)
		}
		r.users[d.username] = &model.User{
			Username:     d.username,
			PasswordHash: hash,
			Roles:        d.roles,
		}
	}
	return nil
}

// save rewrites the whole file through a temp file and an atomic rename so a
// crash mid-write cannot leave a truncated credential store. Must hold lock.
func (r *fileUserRepository) save() error {
	records := make(map[string]credentialRecord, len(r.users))
	for username, u := range r.users {
		records[username] = credentialRecord{
			PasswordHash: u.PasswordHash,
			Roles:        u.Roles,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".users-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), r.path)
}

func (r *fileUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fileUserRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Username]; exists {
		return common.Errorf("user %q already exists: %w", user.Username, common.ErrConflict)
	}

	cp := *user
	r.users[user.Username] = &cp
	if err := r.save(); err != nil {
		delete(r.users, user.Username)
		return common.Errorf("failed to persist credential store: %w", err)
	}
	return nil
}
