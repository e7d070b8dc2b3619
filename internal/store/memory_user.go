// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-login-server/internal/logger"
	"github.com/MKhiriev/go-login-server/models"
)

// memoryUserRepository is the in-process implementation of [UserRepository].
// Records are not durable and disappear with the process.
//
// Two sync.Map indexes back the directory:
//   - byID maps user id to an immutable *models.User snapshot;
//   - byUsername maps username to user id.
//
// A record is committed once its username is reserved for its id in
// byUsername; readers ignore byID entries that are not (or no longer)
// committed. Mutations of an existing record are serialized per id through
// keyedMutex, operations on different ids never wait for each other.
type memoryUserRepository struct {
	byID       sync.Map // int64 -> *models.User
	byUsername sync.Map // string -> int64
	nextID     atomic.Int64
	locks      *keyedMutex

	logger *logger.Logger
	now    func() time.Time
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return newMemoryUserRepository(logger)
}

func newMemoryUserRepository(logger *logger.Logger) *memoryUserRepository {
	return &memoryUserRepository{
		locks:  newKeyedMutex(),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// CreateUser stores the record under a fresh id and then reserves the
// username with LoadOrStore, which is the atomic check-and-insert: when the
// username is already taken the staged record is dropped and
// [ErrUsernameAlreadyExists] is returned.
func (r *memoryUserRepository) CreateUser(ctx context.Context, username, passwordHash, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	now := r.now()
	user := &models.User{
		UserID:       r.nextID.Add(1),
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.byID.Store(user.UserID, user)
	if _, taken := r.byUsername.LoadOrStore(username, user.UserID); taken {
		r.byID.Delete(user.UserID)
		return models.User{}, ErrUsernameAlreadyExists
	}

	return *user, nil
}

func (r *memoryUserRepository) FindUserByID(ctx context.Context, id int64) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return r.committed(id), nil
}

func (r *memoryUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id, ok := r.byUsername.Load(username)
	if !ok {
		return nil, nil
	}

	return r.committed(id.(int64)), nil
}

func (r *memoryUserRepository) UpdateEmail(ctx context.Context, id int64, email string) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := r.locks.Lock(id)
	defer unlock()

	current := r.committed(id)
	if current == nil {
		return nil, nil
	}

	updated := *current
	updated.Email = email
	updated.UpdatedAt = r.now()
	r.byID.Store(id, &updated)

	result := updated
	return &result, nil
}

// DeleteUser releases the username first, which is the moment the record
// stops being visible, and then drops the id entry. Ids are never handed out
// again.
func (r *memoryUserRepository) DeleteUser(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	unlock := r.locks.Lock(id)
	defer unlock()

	value, ok := r.byID.Load(id)
	if !ok {
		return false, nil
	}
	user := value.(*models.User)

	if !r.byUsername.CompareAndDelete(user.Username, id) {
		return false, nil
	}
	r.byID.Delete(id)

	return true, nil
}

func (r *memoryUserRepository) SetPasswordHash(ctx context.Context, id int64, passwordHash string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	unlock := r.locks.Lock(id)
	defer unlock()

	current := r.committed(id)
	if current == nil {
		return false, nil
	}

	updated := *current
	updated.PasswordHash = passwordHash
	updated.UpdatedAt = r.now()
	r.byID.Store(id, &updated)

	return true, nil
}

// committed returns a copy of the record with the given id if its username
// is currently reserved for that id.
func (r *memoryUserRepository) committed(id int64) *models.User {
	value, ok := r.byID.Load(id)
	if !ok {
		return nil
	}
	user := value.(*models.User)

	owner, ok := r.byUsername.Load(user.Username)
	if !ok || owner.(int64) != id {
		return nil
	}

	result := *user
	return &result
}
