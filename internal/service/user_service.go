package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/savantarmorer/wellness-sub001/internal/domain"
	"github.com/savantarmorer/wellness-sub001/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// LinkPartner symmetrically links two users; both end up pointing at
	// each other.
	LinkPartner(ctx context.Context, userID, partnerID uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:          uuid.New(),
		DisplayName: req.DisplayName,
		Timezone:    req.Timezone,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) LinkPartner(ctx context.Context, userID, partnerID uuid.UUID) (*domain.User, error) {
	if userID == partnerID {
		return nil, domain.ErrSelfPartner
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	partner, err := s.repo.GetByID(ctx, partnerID)
	if err != nil {
		return nil, err
	}

	user.PartnerID = &partner.ID
	partner.PartnerID = &user.ID

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, partner); err != nil {
		return nil, err
	}

	return user, nil
}
