package service

import (
	"context"
	"errors"

	hostserrors "staymarket/internal/hosts/errors"
	"staymarket/internal/hosts/repository"
	"staymarket/pkg/config"
	apperrors "staymarket/pkg/errors"
	"staymarket/pkg/model"
	"staymarket/pkg/sanitizer"
	"staymarket/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// imageNamespace is the object-store prefix for host-uploaded images.
const imageNamespace = "host-images"

type HostService interface {
	Create(ctx context.Context, host *model.Host) error
	GetByUserID(ctx context.Context, userID string) (*model.Host, error)
	Update(ctx context.Context, userID string, updates *model.HostUpdate) (*model.Host, error)
	UploadImage(ctx context.Context, userID string, content []byte, contentType string) (string, error)
}

type hostService struct {
	repo     repository.HostRepository
	store    storage.ObjectStore
	validate *validator.Validate
	cfg      *config.Config
}

func NewHostService(
	repo repository.HostRepository,
	store storage.ObjectStore,
	cfg *config.Config,
) HostService {
	return &hostService{
		repo:     repo,
		store:    store,
		validate: validator.New(),
		cfg:      cfg,
	}
}

func (s *hostService) Create(ctx context.Context, host *model.Host) error {
	s.sanitize(host)

	if err := s.validate.Struct(host); err != nil {
		s.cfg.Log.Warn("Host profile validation failed", "error", err)
		return apperrors.Validation("Invalid host profile", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, host); err != nil {
		if errors.Is(err, hostserrors.ErrAlreadyExists) {
			return apperrors.Conflict("A host profile already exists for this user")
		}
		s.cfg.Log.Error("Failed to create host profile", "user_id", host.UserID, "error", err)
		return apperrors.Internal("Failed to create host profile", err)
	}

	s.cfg.Log.Info("Host profile created", "id", host.ID, "user_id", host.UserID)
	return nil
}

func (s *hostService) GetByUserID(ctx context.Context, userID string) (*model.Host, error) {
	if userID == "" {
		return nil, apperrors.InvalidInput("User ID cannot be empty")
	}

	host, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, hostserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Host profile", userID)
		}
		return nil, apperrors.Internal("Failed to retrieve host profile", err)
	}

	return host, nil
}

func (s *hostService) Update(ctx context.Context, userID string, updates *model.HostUpdate) (*model.Host, error) {
	host, err := s.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.validate.Struct(updates); err != nil {
		s.cfg.Log.Warn("Host update validation failed", "user_id", userID, "error", err)
		return nil, apperrors.Validation("Invalid host profile update", map[string]any{"error": err.Error()})
	}

	merged := s.merge(host, updates)
	s.sanitize(merged)

	if err := s.validate.Struct(merged); err != nil {
		return nil, apperrors.Validation("Invalid host profile after update", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Update(ctx, userID, merged); err != nil {
		if errors.Is(err, hostserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Host profile", userID)
		}
		s.cfg.Log.Error("Failed to update host profile", "user_id", userID, "error", err)
		return nil, apperrors.Internal("Failed to update host profile", err)
	}

	s.cfg.Log.Info("Host profile updated", "user_id", userID)
	return merged, nil
}

// UploadImage stores an uploaded image and returns its public URL. The host
// profile must exist before anything is stored.
func (s *hostService) UploadImage(ctx context.Context, userID string, content []byte, contentType string) (string, error) {
	if _, err := s.GetByUserID(ctx, userID); err != nil {
		return "", err
	}
	if len(content) == 0 {
		return "", apperrors.InvalidInput("Image content cannot be empty")
	}

	url, err := s.store.Put(ctx, imageNamespace, content, contentType)
	if err != nil {
		s.cfg.Log.Error("Failed to store host image", "user_id", userID, "error", err)
		return "", apperrors.UploadFailed(imageNamespace, err)
	}

	s.cfg.Log.Info("Host image uploaded", "user_id", userID, "url", url)
	return url, nil
}

func (s *hostService) merge(host *model.Host, updates *model.HostUpdate) *model.Host {
	merged := *host

	if updates.Name != "" {
		merged.Name = updates.Name
	}
	if updates.Email != "" {
		merged.Email = updates.Email
	}
	if updates.Phone != nil {
		merged.Phone = *updates.Phone
	}
	if updates.AvatarURL != nil {
		merged.AvatarURL = *updates.AvatarURL
	}
	if updates.About != nil {
		merged.About = *updates.About
	}

	return &merged
}

func (s *hostService) sanitize(host *model.Host) {
	host.Name = sanitizer.TrimAndNormalize(host.Name)
	host.About = sanitizer.TrimAndNormalize(host.About)
	if host.Phone != "" {
		host.Phone = sanitizer.NormalizePhone(host.Phone)
	}
	if host.AvatarURL != "" {
		host.AvatarURL = sanitizer.NormalizeURL(host.AvatarURL)
	}
}
