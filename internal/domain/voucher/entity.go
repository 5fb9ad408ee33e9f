package voucher

import (
	"errors"
	"time"
)

var ErrInvalidTransition = errors.New("invalid voucher status transition")

type Voucher struct {
	code        Code
	description Description
	amount      Amount
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewVoucher builds a voucher in its creation state.
func NewVoucher(code Code, description Description, amount Amount, now time.Time) *Voucher {
	return &Voucher{
		code:        code,
		description: description,
		amount:      amount,
		status:      StatusActive,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructVoucher(
	code Code,
	description Description,
	amount Amount,
	status Status,
	createdAt, updatedAt time.Time,
) *Voucher {
	return &Voucher{
		code:        code,
		description: description,
		amount:      amount,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (v *Voucher) Redeem(now time.Time) error {
	return v.transition(StatusRedeemed, now)
}

func (v *Voucher) Expire(now time.Time) error {
	return v.transition(StatusExpired, now)
}

// transition leaves the voucher untouched when the move is not allowed.
func (v *Voucher) transition(next Status, now time.Time) error {
	if !v.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	v.status = next
	v.updatedAt = now
	return nil
}

func (v *Voucher) IsActive() bool {
	return v.status == StatusActive
}

func (v *Voucher) Code() Code               { return v.code }
func (v *Voucher) Description() Description { return v.description }
func (v *Voucher) Amount() Amount           { return v.amount }
func (v *Voucher) Status() Status           { return v.status }
func (v *Voucher) CreatedAt() time.Time     { return v.createdAt }
func (v *Voucher) UpdatedAt() time.Time     { return v.updatedAt }
