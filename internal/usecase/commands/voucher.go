package commands

import (
	"context"
	"log/slog"
	"time"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/infra"
	"voucher-pipeline/internal/pkg/clock"
	"voucher-pipeline/internal/pkg/errs"
)

//go:generate mockgen -source=voucher.go -destination=../../../tests/mock/commands/voucher.go -package=commandsmock

// Business rejections. Redelivering the same command cannot change them.
var (
	ErrVoucherNotFound      = errs.New("voucher not found")
	ErrVoucherAlreadyExists = errs.New("voucher already exists")
	ErrInvalidTransition    = errs.New("invalid voucher status transition")
)

var ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed

type VoucherCommands interface {
	Apply(ctx context.Context, cmd command.Command) error
}

type voucherCommandsImpl struct {
	repo   VoucherRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewVoucherCommands(repo VoucherRepository, clock clock.Clock, logger *slog.Logger) VoucherCommands {
	return &voucherCommandsImpl{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (u *voucherCommandsImpl) Apply(ctx context.Context, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Create:
		return u.create(ctx, c)
	case command.Redeem:
		return u.transition(ctx, c.Code, (*voucher.Voucher).Redeem)
	case command.Expire:
		return u.transition(ctx, c.Code, (*voucher.Voucher).Expire)
	default:
		return errs.Newf("unsupported command %T", cmd)
	}
}

func (u *voucherCommandsImpl) create(ctx context.Context, c command.Create) error {
	exists, err := u.repo.ExistsByCode(ctx, c.Code)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if exists {
		return errs.Wrapf(ErrVoucherAlreadyExists, "code %s", c.Code)
	}

	v := voucher.NewVoucher(c.Code, c.Description, c.Amount, u.clock.Now())

	// The pre-check above is only a shortcut; the unique constraint decides.
	if err := u.repo.Insert(ctx, v); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.Wrapf(ErrVoucherAlreadyExists, "code %s", c.Code)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.InfoContext(ctx, "voucher created",
		slog.String("voucher_code", c.Code.String()),
		slog.String("amount", c.Amount.String()))
	return nil
}

func (u *voucherCommandsImpl) transition(
	ctx context.Context,
	code voucher.Code,
	move func(*voucher.Voucher, time.Time) error,
) error {
	v, err := u.repo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Wrapf(ErrVoucherNotFound, "code %s", code)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	expected := v.Status()
	if err := move(v, u.clock.Now()); err != nil {
		return errs.Mark(errs.Wrapf(err, "code %s is %s", code, expected), ErrInvalidTransition)
	}

	// Compare-and-set on the status read above: of two concurrent workers
	// only one matches, the other sees a conflict.
	if err := u.repo.UpdateStatus(ctx, v, expected); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return errs.Mark(errs.Wrapf(err, "code %s changed concurrently", code), ErrInvalidTransition)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	u.logger.InfoContext(ctx, "voucher status changed",
		slog.String("voucher_code", code.String()),
		slog.String("from", expected.String()),
		slog.String("to", v.Status().String()))
	return nil
}

// IsRejection reports whether err is a terminal business outcome.
func IsRejection(err error) bool {
	return errs.IsAny(err, ErrVoucherNotFound, ErrVoucherAlreadyExists, ErrInvalidTransition)
}
