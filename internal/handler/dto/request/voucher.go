package request

import (
	"voucher-pipeline/internal/usecase"
)

// Mutation endpoints take their input from the query string.
type CreateVoucherRequest struct {
	VoucherCode string `form:"voucherCode" binding:"required"`
	Description string `form:"description" binding:"required"`
	Amount      string `form:"amount" binding:"required"`
}

func (r CreateVoucherRequest) ToParams() usecase.CreateVoucherParams {
	return usecase.CreateVoucherParams{
		VoucherCode: r.VoucherCode,
		Description: r.Description,
		Amount:      r.Amount,
	}
}

type VoucherCodeRequest struct {
	VoucherCode string `form:"voucherCode" binding:"required"`
}
