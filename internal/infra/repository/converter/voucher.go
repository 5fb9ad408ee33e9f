package converter

import (
	"voucher-pipeline/internal/domain/voucher"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/pkg/pgconv"
)

func VoucherToCreateParams(v *voucher.Voucher) sqlc.CreateVoucherParams {
	return sqlc.CreateVoucherParams{
		VoucherCode: v.Code().String(),
		Description: v.Description().String(),
		Amount:      pgconv.DecimalToNumeric(v.Amount().Decimal()),
		Status:      v.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(v.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(v.UpdatedAt()),
	}
}

func VoucherToUpdateStatusParams(v *voucher.Voucher, expected voucher.Status) sqlc.UpdateVoucherStatusParams {
	return sqlc.UpdateVoucherStatusParams{
		NextStatus:     v.Status().String(),
		UpdatedAt:      pgconv.TimeToPgtype(v.UpdatedAt()),
		VoucherCode:    v.Code().String(),
		ExpectedStatus: expected.String(),
	}
}

// VoucherFromRow trusts the row: the schema already enforces the invariants.
func VoucherFromRow(row sqlc.Vouchers) (*voucher.Voucher, error) {
	status := voucher.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("unknown voucher status %q", row.Status)
	}

	amount, err := pgconv.DecimalFromNumeric(row.Amount)
	if err != nil {
		return nil, errs.Wrap(err, "invalid voucher amount")
	}

	return voucher.ReconstructVoucher(
		voucher.Code(row.VoucherCode),
		voucher.Description(row.Description),
		voucher.RestoreAmount(amount),
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
