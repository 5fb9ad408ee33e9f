package readstore

import (
	"context"

	"voucher-pipeline/internal/infra"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/internal/pkg/pgconv"
	"voucher-pipeline/internal/usecase/queries"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/readstore/voucher.go -package=readstoremock

type VoucherReadQueries interface {
	ListVouchers(ctx context.Context, db sqlc.DBTX) ([]sqlc.Vouchers, error)
	GetVoucherByCode(ctx context.Context, db sqlc.DBTX, voucherCode string) (sqlc.Vouchers, error)
}

type VoucherReadStore struct {
	queries VoucherReadQueries
	db      sqlc.DBTX
}

func NewVoucherReadStore(queries VoucherReadQueries, db sqlc.DBTX) *VoucherReadStore {
	return &VoucherReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherReadStore) List(ctx context.Context) ([]*queries.VoucherView, error) {
	rows, err := r.queries.ListVouchers(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list vouchers", err)
	}

	views := make([]*queries.VoucherView, 0, len(rows))
	for _, row := range rows {
		view, err := toVoucherView(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert voucher row", err)
		}
		views = append(views, view)
	}
	return views, nil
}

// codes are case-sensitive, so no normalisation happens here
func (r *VoucherReadStore) FindByCode(ctx context.Context, code string) (*queries.VoucherView, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}

	view, err := toVoucherView(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert voucher row", err)
	}
	return view, nil
}

func toVoucherView(row sqlc.Vouchers) (*queries.VoucherView, error) {
	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, err
	}

	return &queries.VoucherView{
		VoucherCode: row.VoucherCode,
		Description: row.Description,
		Amount:      amount,
		Status:      row.Status,
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:   pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
