package repository

import (
	"context"

	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/infra"
	"voucher-pipeline/internal/infra/repository/converter"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/internal/pkg/pgconv"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/repository/voucher.go -package=repositorymock

type VoucherWriteQueries interface {
	CreateVoucher(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateVoucherParams) (int64, error)
	GetVoucherByCode(ctx context.Context, db sqlc.DBTX, voucherCode string) (sqlc.Vouchers, error)
	UpdateVoucherStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateVoucherStatusParams) (int64, error)
	VoucherExists(ctx context.Context, db sqlc.DBTX, voucherCode string) (bool, error)
}

type VoucherRepository struct {
	queries VoucherWriteQueries
	db      sqlc.DBTX
}

func NewVoucherRepository(queries VoucherWriteQueries, db sqlc.DBTX) *VoucherRepository {
	return &VoucherRepository{
		queries: queries,
		db:      db,
	}
}

func (r *VoucherRepository) ExistsByCode(ctx context.Context, code voucher.Code) (bool, error) {
	exists, err := r.queries.VoucherExists(ctx, r.db, code.String())
	if err != nil {
		return false, infra.WrapRepoErr("failed to check voucher existence", err)
	}
	return exists, nil
}

func (r *VoucherRepository) FindByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error) {
	row, err := r.queries.GetVoucherByCode(ctx, r.db, code.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("voucher not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find voucher by code", err)
	}

	v, err := converter.VoucherFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert voucher row", err)
	}
	return v, nil
}

// Insert relies on ON CONFLICT DO NOTHING, so a taken code shows up as zero
// affected rows rather than a unique violation.
func (r *VoucherRepository) Insert(ctx context.Context, v *voucher.Voucher) error {
	affected, err := r.queries.CreateVoucher(ctx, r.db, converter.VoucherToCreateParams(v))
	if err != nil {
		return infra.WrapRepoErr("failed to create voucher", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("voucher code already exists", nil, infra.KindDuplicateKey)
	}
	return nil
}

func (r *VoucherRepository) UpdateStatus(ctx context.Context, v *voucher.Voucher, expected voucher.Status) error {
	affected, err := r.queries.UpdateVoucherStatus(ctx, r.db, converter.VoucherToUpdateStatusParams(v, expected))
	if err != nil {
		return infra.WrapRepoErr("failed to update voucher status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("voucher status changed concurrently", nil, infra.KindConflict)
	}
	return nil
}
