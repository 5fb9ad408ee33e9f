package commands

import (
	"context"

	"voucher-pipeline/internal/domain/voucher"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// VoucherRepository is the write side of the voucher store.
//
// Insert must fail with infra.KindDuplicateKey when the code is taken, and
// UpdateStatus must fail with infra.KindConflict when the stored status no
// longer equals expected. Both are single conditional writes.
type VoucherRepository interface {
	ExistsByCode(ctx context.Context, code voucher.Code) (bool, error)
	FindByCode(ctx context.Context, code voucher.Code) (*voucher.Voucher, error)
	Insert(ctx context.Context, v *voucher.Voucher) error
	UpdateStatus(ctx context.Context, v *voucher.Voucher, expected voucher.Status) error
}
