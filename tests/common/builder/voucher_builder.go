//go:build unit || e2e

package builder

import (
	"time"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/domain/voucher"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/internal/pkg/pgconv"
	"voucher-pipeline/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type VoucherBuilder struct {
	Code        string
	Description string
	Amount      string
	Status      voucher.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func NewVoucherBuilder() *VoucherBuilder {
	now := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	return &VoucherBuilder{
		Code:        "SUMMER-2024",
		Description: "Summer campaign voucher",
		Amount:      "25.50",
		Status:      voucher.StatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (b *VoucherBuilder) With(mutate func(*VoucherBuilder)) *VoucherBuilder {
	mutate(b)
	return b
}

func (b *VoucherBuilder) WithCode(code string) *VoucherBuilder {
	b.Code = code
	return b
}

func (b *VoucherBuilder) WithStatus(status voucher.Status) *VoucherBuilder {
	b.Status = status
	return b
}

// Build methods
func (b *VoucherBuilder) BuildDomain() (*voucher.Voucher, error) {
	code, err := voucher.NewCode(b.Code)
	if err != nil {
		return nil, err
	}
	description, err := voucher.NewDescription(b.Description)
	if err != nil {
		return nil, err
	}
	amount, err := voucher.ParseAmount(b.Amount)
	if err != nil {
		return nil, err
	}
	return voucher.ReconstructVoucher(code, description, amount, b.Status, b.CreatedAt, b.UpdatedAt), nil
}

// MustBuildDomain panics on invalid builder state; for test setup only.
func (b *VoucherBuilder) MustBuildDomain() *voucher.Voucher {
	v, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return v
}

func (b *VoucherBuilder) BuildInfra() sqlc.Vouchers {
	amount := pgconv.DecimalToNumeric(decimal.RequireFromString(b.Amount))
	return sqlc.Vouchers{
		ID:          1,
		VoucherCode: b.Code,
		Description: b.Description,
		Amount:      amount,
		Status:      b.Status.String(),
		CreatedAt:   pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *VoucherBuilder) BuildView() *queries.VoucherView {
	return &queries.VoucherView{
		VoucherCode: b.Code,
		Description: b.Description,
		Amount:      decimal.RequireFromString(b.Amount),
		Status:      b.Status.String(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (b *VoucherBuilder) BuildCreateCommand() command.Create {
	v := b.MustBuildDomain()
	return command.Create{Code: v.Code(), Description: v.Description(), Amount: v.Amount()}
}

func (b *VoucherBuilder) BuildRedeemCommand() command.Redeem {
	return command.Redeem{Code: b.MustBuildDomain().Code()}
}

func (b *VoucherBuilder) BuildExpireCommand() command.Expire {
	return command.Expire{Code: b.MustBuildDomain().Code()}
}
