package postgres

import (
	"context"

	"github.com/jhoicas/nexus-crm/internal/domain"
	"github.com/jhoicas/nexus-crm/internal/domain/entity"
)

// UserRepo consultas de usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// List devuelve todos los usuarios ordenados por nombre.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name, email, role, avatar, status FROM users ORDER BY name`)
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.Avatar, &u.Status); err != nil {
			return nil, classify("scan user", err)
		}
		list = append(list, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list users", err)
	}
	return list, nil
}

// Create persiste un nuevo usuario. Email repetido → domain.ErrDuplicate.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, role, avatar, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, u.ID, u.Name, u.Email, u.Role, u.Avatar, u.Status)
	return classify("insert user", err)
}

// Delete elimina un usuario. domain.ErrNotFound si no existe.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return classify("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
