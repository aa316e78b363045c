package store

import (
	"context"
	"fmt"

	"github.com/ascendquiz/ascendquiz/ent"
	"github.com/ascendquiz/ascendquiz/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, username string) (*User, error) {
	u, err := r.client.User.Create().
		SetUsername(username).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	u, err := r.client.User.Query().
		Where(user.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) List(ctx context.Context) ([]*User, error) {
	users, err := r.client.User.Query().
		Order(ent.Asc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]*User, len(users))
	for i, u := range users {
		out[i] = entUserToUser(u)
	}
	return out, nil
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
