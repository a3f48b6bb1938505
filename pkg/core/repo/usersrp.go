package repo

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type UsersConnQueryer interface {
	UsersQueryer
}

type UsersTxQueryer interface {
	UsersQueryer
}

// UsersQueryer exposes the portal accounts store. GetByEmail returns
// a categorized not-found error when no account matches.
type UsersQueryer interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, u *model.User) error
	Count(ctx context.Context) (int64, error)
}

type Users interface {
	Conn(Conn) UsersConnQueryer
	Tx(Tx) UsersTxQueryer
}
