package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/model"
	"storefront/internal/pkg/validate"
	"storefront/internal/repository"
	"storefront/internal/storage"
)

// UpdateProfileInput carries the optional fields of a profile update.
// A nil field is left unchanged.
type UpdateProfileInput struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	CurrentPassword *string `json:"currentPassword,omitempty"`
	NewPassword     *string `json:"newPassword,omitempty"`
}

// ProfileService defines the account use cases of the signed-in user.
type ProfileService interface {
	// Get returns the user with a freshly presigned avatar URL.
	Get(ctx context.Context, userID int64) (*model.User, error)

	// Update validates and stores name, email and password changes.
	// Changing the password requires the current password.
	Update(ctx context.Context, userID int64, in UpdateProfileInput) (*model.User, error)

	// UploadAvatar stores a new avatar image and removes the previous one.
	// The uploaded object is deleted again when the user row cannot be saved.
	UploadAvatar(ctx context.Context, userID int64, r io.Reader, filename, contentType string, size int64) (*model.User, error)

	// OpenAvatar streams the user's current avatar.
	OpenAvatar(ctx context.Context, userID int64) (io.ReadCloser, storage.ObjectInfo, error)
}

type profileService struct {
	users         repository.UserRepository
	store         storage.Storage
	presignExpiry time.Duration
	logger        *slog.Logger
}

// NewProfileService constructs a new ProfileService.
func NewProfileService(users repository.UserRepository, store storage.Storage, presignExpiry time.Duration, logger *slog.Logger) ProfileService {
	return &profileService{users: users, store: store, presignExpiry: presignExpiry, logger: logger}
}

var (
	hashPassword = func(pw string) (string, error) {
		b, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		return string(b), err
	}
	checkPassword = func(hash, pw string) error {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw))
	}
)

func (s *profileService) Get(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.resolveAvatar(ctx, u)
	return u, nil
}

func (s *profileService) Update(ctx context.Context, userID int64, in UpdateProfileInput) (*model.User, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if !validate.Required(name) {
			return nil, invalid("name", "name is required")
		}
		if !validate.MinLen(name, 2) {
			return nil, invalid("name", "name must be at least 2 characters")
		}
		u.Name = name
	}

	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if !validate.Required(email) {
			return nil, invalid("email", "email is required")
		}
		if !validate.Email(email) {
			return nil, invalid("email", "email must be a valid address")
		}
		if !strings.EqualFold(email, u.Email) {
			taken, err := s.users.EmailTaken(ctx, email, u.ID)
			if err != nil {
				return nil, fmt.Errorf("check email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		u.Email = email
	}

	if in.NewPassword != nil {
		if in.CurrentPassword == nil || *in.CurrentPassword == "" {
			return nil, invalid("currentPassword", "current password is required")
		}
		if !validate.MinLen(*in.NewPassword, 6) {
			return nil, invalid("newPassword", "new password must be at least 6 characters")
		}
		if err := checkPassword(u.PasswordHash, *in.CurrentPassword); err != nil {
			return nil, ErrInvalidPassword
		}
		hash, err := hashPassword(*in.NewPassword)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	stored, err := s.users.UpdateProfile(ctx, u)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("save profile: %w", err)
	}
	s.resolveAvatar(ctx, stored)
	return stored, nil
}

func (s *profileService) UploadAvatar(ctx context.Context, userID int64, r io.Reader, filename, contentType string, size int64) (*model.User, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("file", "avatar must be an image")
	}
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, err
	}

	key := storage.NewObjectKey(storage.PrefixAvatars, filename)
	obj, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": filename,
			"user-id":           fmt.Sprint(userID),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	previous := u.AvatarKey
	u.AvatarKey = obj.Key
	stored, err := s.users.UpdateProfile(ctx, u)
	if err != nil {
		if delErr := s.store.Delete(ctx, obj.Key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}

	if previous != "" && previous != obj.Key {
		if err := s.store.Delete(ctx, previous); err != nil {
			s.logger.Warn("avatar_cleanup_failed", "user_id", userID, "object_key", previous, "error_message", err.Error())
		}
	}

	s.resolveAvatar(ctx, stored)
	return stored, nil
}

func (s *profileService) OpenAvatar(ctx context.Context, userID int64) (io.ReadCloser, storage.ObjectInfo, error) {
	u, err := s.find(ctx, userID)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	if u.AvatarKey == "" {
		return nil, storage.ObjectInfo{}, ErrAvatarNotFound
	}
	rc, info, err := s.store.Get(ctx, u.AvatarKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, storage.ObjectInfo{}, ErrAvatarNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("open avatar: %w", err)
	}
	return rc, info, nil
}

func (s *profileService) find(ctx context.Context, userID int64) (*model.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// resolveAvatar fills AvatarURL; a presign failure only drops the URL.
func (s *profileService) resolveAvatar(ctx context.Context, u *model.User) {
	if u.AvatarKey == "" || s.store == nil {
		return
	}
	url, err := s.store.PresignGet(ctx, u.AvatarKey, s.presignExpiry)
	if err != nil {
		s.logger.Warn("avatar_presign_failed", "user_id", u.ID, "object_key", u.AvatarKey, "error_message", err.Error())
		return
	}
	u.AvatarURL = url
}
