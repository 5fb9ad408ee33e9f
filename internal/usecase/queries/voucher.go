package queries

import (
	"context"
	"time"

	"voucher-pipeline/internal/infra"
	"voucher-pipeline/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/queries/voucher.go -package=queriesmock

var ErrVoucherNotFound = errs.New("voucher not found")

// Read model (DTO for read side)
type VoucherView struct {
	VoucherCode string          `json:"voucher_code"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type VoucherReadStore interface {
	List(ctx context.Context) ([]*VoucherView, error)
	FindByCode(ctx context.Context, code string) (*VoucherView, error)
}

type VoucherQueries interface {
	ListVouchers(ctx context.Context) ([]*VoucherView, error)
	GetVoucher(ctx context.Context, code string) (*VoucherView, error)
}

type voucherQueriesImpl struct {
	store VoucherReadStore
}

func NewVoucherQueries(store VoucherReadStore) VoucherQueries {
	return &voucherQueriesImpl{store: store}
}

func (q *voucherQueriesImpl) ListVouchers(ctx context.Context) ([]*VoucherView, error) {
	views, err := q.store.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*VoucherView{}
	}
	return views, nil
}

func (q *voucherQueriesImpl) GetVoucher(ctx context.Context, code string) (*VoucherView, error) {
	view, err := q.store.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrVoucherNotFound, "code %s", code)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}
