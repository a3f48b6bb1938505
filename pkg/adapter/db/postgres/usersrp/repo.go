package usersrp

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/adapter/db/postgres"
	"github.com/neurofleetx/fleetweb/pkg/core/model"
	"github.com/neurofleetx/fleetweb/pkg/core/repo"
)

type Repo struct {
}

func New() *Repo {
	return &Repo{}
}

// queryer adapts the package-level generic query functions to the
// repo.UsersQueryer interface for both connections and transactions.
type queryer[Q postgres.Queryer] struct {
	q Q
}

func (users *Repo) Conn(c repo.Conn) repo.UsersConnQueryer {
	cc := c.(*postgres.Conn)
	return queryer[*postgres.Conn]{q: cc}
}

func (users *Repo) Tx(tx repo.Tx) repo.UsersTxQueryer {
	tt := tx.(*postgres.Tx)
	return queryer[*postgres.Tx]{q: tt}
}

func (qq queryer[Q]) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return GetByEmail(ctx, qq.q, email)
}

func (qq queryer[Q]) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return ExistsByEmail(ctx, qq.q, email)
}

func (qq queryer[Q]) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return ExistsByUsername(ctx, qq.q, username)
}

func (qq queryer[Q]) Create(ctx context.Context, u *model.User) error {
	return Create(ctx, qq.q, u)
}

func (qq queryer[Q]) Count(ctx context.Context) (int64, error) {
	return Count(ctx, qq.q)
}
