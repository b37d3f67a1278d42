package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/course-portal-api/internal/domain"
	"github.com/vietanh2810/course-portal-api/internal/repository/dao"
)

func (r *PostgresStorage) GetUser(ctx context.Context, id uint) (domain.User, error) {
	found, err := r.userDAO.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByID -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	found, err := r.userDAO.FindByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.FindByUsername -> %w", err)
	}

	return userDaoToDomain(found), nil
}

func (r *PostgresStorage) CreateUser(ctx context.Context, user domain.InsertUser) (domain.User, error) {
	created, err := r.userDAO.Insert(ctx, dao.User{
		Username: user.Username,
		Password: user.Password,
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("r.userDAO.Insert -> %w", err)
	}

	return userDaoToDomain(created), nil
}

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:       u.ID,
		Username: u.Username,
		Password: u.Password,
	}
}
