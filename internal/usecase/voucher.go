package usecase

import (
	"context"
	"log/slog"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/pkg/metrics"
	"voucher-pipeline/internal/usecase/queries"
)

//go:generate mockgen -source=voucher.go -destination=../../tests/mock/usecase/voucher.go -package=usecasemock

var (
	ErrValidation      = errs.New("voucher request validation failed")
	ErrDeliveryFailure = errs.New("voucher command could not be enqueued")
)

type CommandPublisher interface {
	Publish(ctx context.Context, cmd command.Command) error
}

type CreateVoucherParams struct {
	VoucherCode string
	Description string
	Amount      string
}

// Acknowledgement confirms that a command was accepted by the queue.
// It says nothing about whether the command will succeed.
type Acknowledgement struct {
	VoucherCode string
	Action      command.Kind
	Message     string
}

type VoucherUseCase interface {
	CreateVoucherAsync(ctx context.Context, params CreateVoucherParams) (*Acknowledgement, error)
	RedeemVoucherAsync(ctx context.Context, code string) (*Acknowledgement, error)
	ExpireVoucherAsync(ctx context.Context, code string) (*Acknowledgement, error)
	ListVouchers(ctx context.Context) ([]*queries.VoucherView, error)
	GetVoucher(ctx context.Context, code string) (*queries.VoucherView, error)
}

type voucherUseCaseImpl struct {
	publisher CommandPublisher
	queries   queries.VoucherQueries
	metrics   *metrics.Pipeline
	logger    *slog.Logger
}

func NewVoucherUseCase(
	publisher CommandPublisher,
	queries queries.VoucherQueries,
	metrics *metrics.Pipeline,
	logger *slog.Logger,
) VoucherUseCase {
	return &voucherUseCaseImpl{
		publisher: publisher,
		queries:   queries,
		metrics:   metrics,
		logger:    logger,
	}
}

func (u *voucherUseCaseImpl) CreateVoucherAsync(ctx context.Context, params CreateVoucherParams) (*Acknowledgement, error) {
	code, err := voucher.NewCode(params.VoucherCode)
	if err != nil {
		return nil, invalid(err, "voucherCode")
	}
	description, err := voucher.NewDescription(params.Description)
	if err != nil {
		return nil, invalid(err, "description")
	}
	amount, err := voucher.ParseAmount(params.Amount)
	if err != nil {
		return nil, invalid(err, "amount")
	}

	cmd := command.Create{Code: code, Description: description, Amount: amount}
	if err := u.publish(ctx, cmd); err != nil {
		return nil, err
	}
	return acknowledge(cmd, "Voucher creation initiated for code: "), nil
}

func (u *voucherUseCaseImpl) RedeemVoucherAsync(ctx context.Context, code string) (*Acknowledgement, error) {
	c, err := voucher.NewCode(code)
	if err != nil {
		return nil, invalid(err, "voucherCode")
	}

	cmd := command.Redeem{Code: c}
	if err := u.publish(ctx, cmd); err != nil {
		return nil, err
	}
	return acknowledge(cmd, "Voucher redemption initiated for code: "), nil
}

func (u *voucherUseCaseImpl) ExpireVoucherAsync(ctx context.Context, code string) (*Acknowledgement, error) {
	c, err := voucher.NewCode(code)
	if err != nil {
		return nil, invalid(err, "voucherCode")
	}

	cmd := command.Expire{Code: c}
	if err := u.publish(ctx, cmd); err != nil {
		return nil, err
	}
	return acknowledge(cmd, "Voucher expiration initiated for code: "), nil
}

func (u *voucherUseCaseImpl) ListVouchers(ctx context.Context) ([]*queries.VoucherView, error) {
	return u.queries.ListVouchers(ctx)
}

func (u *voucherUseCaseImpl) GetVoucher(ctx context.Context, code string) (*queries.VoucherView, error) {
	return u.queries.GetVoucher(ctx, code)
}

func (u *voucherUseCaseImpl) publish(ctx context.Context, cmd command.Command) error {
	kind := cmd.Kind().String()
	if err := u.publisher.Publish(ctx, cmd); err != nil {
		u.metrics.ObservePublished(kind, metrics.ResultFailed)
		u.logger.ErrorContext(ctx, "failed to enqueue voucher command",
			slog.String("action", kind),
			slog.String("voucher_code", cmd.VoucherCode().String()),
			slog.String("error", err.Error()))
		return errs.Mark(errs.Wrapf(err, "publish %s", kind), ErrDeliveryFailure)
	}

	u.metrics.ObservePublished(kind, metrics.ResultConfirmed)
	u.logger.DebugContext(ctx, "voucher command enqueued",
		slog.String("action", kind),
		slog.String("voucher_code", cmd.VoucherCode().String()))
	return nil
}

func invalid(err error, field string) error {
	return errs.Mark(errs.Wrapf(err, "invalid %s", field), ErrValidation)
}

func acknowledge(cmd command.Command, prefix string) *Acknowledgement {
	code := cmd.VoucherCode().String()
	return &Acknowledgement{
		VoucherCode: code,
		Action:      cmd.Kind(),
		Message:     prefix + code,
	}
}
