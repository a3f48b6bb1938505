package usersrp

import (
	"context"
	"fmt"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/cerr"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type gUser struct {
	UID          string `gorm:"primaryKey;column:uid"`
	Username     string `gorm:"uniqueIndex"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string
}

func (gu *gUser) TableName() string {
	return "users"
}

func (gu *gUser) Model() *model.User {
	return &model.User{
		ID:           gu.UID,
		Username:     gu.Username,
		Email:        gu.Email,
		PasswordHash: gu.PasswordHash,
		Role:         model.UserRole(gu.Role),
	}
}

// Migrate creates or updates the users table.
func Migrate[Q postgres.Queryer](ctx context.Context, q Q) error {
	return q.GORM(ctx).AutoMigrate(&gUser{})
}

func GetByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (*model.User, error) {
	gdb := q.GORM(ctx)
	var gus []gUser
	if err := gdb.Where("email=?", email).Find(&gus).Error; err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	if n := len(gus); n != 1 {
		return nil, cerr.NotFound(
			fmt.Errorf("expected one row, but got %d", n),
		)
	}
	return gus[0].Model(), nil
}

func ExistsByEmail[Q postgres.Queryer](ctx context.Context, q Q, email string) (bool, error) {
	return exists(ctx, q, "email=?", email)
}

func ExistsByUsername[Q postgres.Queryer](ctx context.Context, q Q, username string) (bool, error) {
	return exists(ctx, q, "username=?", username)
}

func exists[Q postgres.Queryer](ctx context.Context, q Q, cond string, arg any) (bool, error) {
	gdb := q.GORM(ctx)
	var n int64
	if err := gdb.Model(&gUser{}).Where(cond, arg).Count(&n).Error; err != nil {
		return false, fmt.Errorf("count: %w", err)
	}
	return n > 0, nil
}

func Create[Q postgres.Queryer](ctx context.Context, q Q, u *model.User) error {
	gdb := q.GORM(ctx)
	gu := &gUser{
		UID:          u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
	}
	if err := gdb.Create(gu).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func Count[Q postgres.Queryer](ctx context.Context, q Q) (int64, error) {
	gdb := q.GORM(ctx)
	var n int64
	if err := gdb.Model(&gUser{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
