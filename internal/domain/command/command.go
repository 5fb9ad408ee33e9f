// Package command defines the voucher mutations carried on the queue.
//
// Command is a closed sum type: Create, Redeem and Expire are its only
// variants, and each carries just the fields its handler needs.
package command

import (
	"voucher-pipeline/internal/domain/voucher"
)

type Kind string

const (
	KindCreate Kind = "CREATE"
	KindRedeem Kind = "REDEEM"
	KindExpire Kind = "EXPIRE"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindCreate, KindRedeem, KindExpire:
		return true
	default:
		return false
	}
}

type Command interface {
	Kind() Kind
	VoucherCode() voucher.Code
	isCommand()
}

type Create struct {
	Code        voucher.Code
	Description voucher.Description
	Amount      voucher.Amount
}

type Redeem struct {
	Code voucher.Code
}

type Expire struct {
	Code voucher.Code
}

func (Create) Kind() Kind { return KindCreate }
func (Redeem) Kind() Kind { return KindRedeem }
func (Expire) Kind() Kind { return KindExpire }

func (c Create) VoucherCode() voucher.Code { return c.Code }
func (c Redeem) VoucherCode() voucher.Code { return c.Code }
func (c Expire) VoucherCode() voucher.Code { return c.Code }

func (Create) isCommand() {}
func (Redeem) isCommand() {}
func (Expire) isCommand() {}
