package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-event-planner/internal/logger"
	"github.com/sbilibin2017/gw-event-planner/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository defines storage operations for users.
type UserRepository interface {
	Create(ctx context.Context, u models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// UserService handles registration and maintenance of user accounts.
type UserService struct {
	repo UserRepository
	tx   TxRunner
	publisher
	cost int
}

// NewUserService creates a new UserService. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewUserService(repo UserRepository, tx TxRunner, kafkaWriter KafkaWriter, cost int) *UserService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserService{
		repo:      repo,
		tx:        tx,
		publisher: publisher{writer: kafkaWriter},
		cost:      cost,
	}
}

// Register hashes the password and stores a new user.
func (s *UserService) Register(ctx context.Context, reg models.UserRegistration) (int64, error) {
	hash, err := s.hash(reg.Password)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.tx.Do(ctx, func(ctx context.Context) (err error) {
		id, err = s.repo.Create(ctx, reg.ToUser(hash))
		return err
	})
	if err != nil {
		logFailure("failed to register user", err, "username", reg.Username)
		return 0, err
	}

	s.publish(ctx, models.EntityUser, models.OperationCreated, id)
	return id, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update. A new password is hashed before storage.
func (s *UserService) Update(ctx context.Context, id int64, upd models.UserUpdate) (int64, error) {
	if upd.Password.IsSet() && !upd.Password.IsNull() {
		hash, err := s.hash(upd.Password.Value)
		if err != nil {
			return 0, err
		}
		upd.Password = models.Some(hash)
	}

	var updatedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		updatedID, err = s.repo.Update(ctx, id, upd)
		return err
	})
	if err != nil {
		logFailure("failed to update user", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityUser, models.OperationUpdated, updatedID)
	return updatedID, nil
}

// Delete removes a user.
func (s *UserService) Delete(ctx context.Context, id int64) (int64, error) {
	var deletedID int64
	err := s.tx.Do(ctx, func(ctx context.Context) (err error) {
		deletedID, err = s.repo.Delete(ctx, id)
		return err
	})
	if err != nil {
		logFailure("failed to delete user", err, "id", id)
		return 0, err
	}

	s.publish(ctx, models.EntityUser, models.OperationDeleted, deletedID)
	return deletedID, nil
}

func (s *UserService) hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", &models.ValidationError{Fields: []models.FieldError{
			{Field: "password", Message: "must be at most 72 bytes"},
		}}
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return "", err
	}
	return string(hashed), nil
}
