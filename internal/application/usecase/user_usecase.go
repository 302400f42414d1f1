package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/nexus-crm/internal/application/dto"
	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
	"github.com/jhoicas/nexus-crm/internal/domain/repository"
)

const defaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed="

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("usuarios: listar: %w", err)
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, entityToUserResponse(u))
	}
	return out, nil
}

// Create da de alta un usuario activo. Sin avatar se genera uno a partir del nombre.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Role = strings.ToUpper(strings.TrimSpace(in.Role))
	if in.Name == "" || in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	if in.Avatar == "" {
		in.Avatar = defaultAvatarURL + url.QueryEscape(in.Name)
	}
	user := &entity.User{
		ID:     uuid.New().String(),
		Name:   in.Name,
		Email:  in.Email,
		Role:   in.Role,
		Avatar: in.Avatar,
		Status: entity.UserStatusActive,
	}
	if err := uc.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usuarios: crear: %w", err)
	}
	out := entityToUserResponse(user)
	return &out, nil
}

// Delete elimina un usuario. Un operador no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if id == actorID {
		return domain.ErrConflict
	}
	if err := uc.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("usuarios: eliminar: %w", err)
	}
	return nil
}

func entityToUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar,
		Status: u.Status,
	}
}

// UserResponseFrom expone el mapeo para el handler de /api/me.
func UserResponseFrom(u *entity.User) dto.UserResponse {
	return entityToUserResponse(u)
}
