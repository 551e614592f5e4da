package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpcastillo/warehouse-api/internal/application/dto"
	"github.com/jpcastillo/warehouse-api/internal/domain"
	"github.com/jpcastillo/warehouse-api/internal/domain/entity"
	"github.com/jpcastillo/warehouse-api/internal/domain/repository"
	"github.com/jpcastillo/warehouse-api/pkg/config"
	"github.com/jpcastillo/warehouse-api/pkg/jwt"
)

// AuthUseCase gestiona login, alta de usuarios y el perfil del usuario autenticado.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica credenciales con bcrypt y emite un JWT con user_id y role.
// Email inexistente, password incorrecta y usuario desactivado devuelven el
// mismo error para no filtrar qué cuentas existen.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, User: *toUserResponse(user)}, nil
}

// CreateUser da de alta un usuario con la password hasheada.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleMagazziniere
	}
	switch role {
	case entity.RoleAdmin, entity.RoleResponsabile, entity.RoleMagazziniere, entity.RoleCommerciale:
	default:
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// ListUsers devuelve los usuarios registrados.
func (uc *AuthUseCase) ListUsers(ctx context.Context, limit, offset int) ([]dto.UserResponse, error) {
	if limit <= 0 {
		limit = 100
	}
	list, err := uc.userRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
