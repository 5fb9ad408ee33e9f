//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/pkg/metrics"
	"voucher-pipeline/internal/usecase"
	queriesmock "voucher-pipeline/tests/mock/queries"
	usecasemock "voucher-pipeline/tests/mock/usecase"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VoucherUseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	publisher *usecasemock.MockCommandPublisher
	queries   *queriesmock.MockVoucherQueries
	metrics   *metrics.Pipeline
	useCase   usecase.VoucherUseCase
	ctx       context.Context
}

func (s *VoucherUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.publisher = usecasemock.NewMockCommandPublisher(s.ctrl)
	s.queries = queriesmock.NewMockVoucherQueries(s.ctrl)
	s.metrics = metrics.NewPipeline(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.useCase = usecase.NewVoucherUseCase(s.publisher, s.queries, s.metrics, logger)
	s.ctx = context.Background()
}

func TestVoucherUseCaseSuite(t *testing.T) {
	suite.Run(t, new(VoucherUseCaseTestSuite))
}

func (s *VoucherUseCaseTestSuite) TestCreateVoucherAsync() {
	valid := usecase.CreateVoucherParams{VoucherCode: "V1", Description: "Ten off", Amount: "10.00"}

	s.Run("success: publishes a create command and acknowledges", func() {
		s.SetupTest()
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, cmd command.Command) error {
				create, ok := cmd.(command.Create)
				s.Require().True(ok)
				s.Equal("V1", create.Code.String())
				s.Equal("Ten off", create.Description.String())
				s.Equal("10.00", create.Amount.String())
				return nil
			})

		ack, err := s.useCase.CreateVoucherAsync(s.ctx, valid)

		s.Require().NoError(err)
		s.Equal("Voucher creation initiated for code: V1", ack.Message)
		s.Equal(command.KindCreate, ack.Action)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Published("CREATE", metrics.ResultConfirmed)))
	})

	invalid := []struct {
		name   string
		mutate func(*usecase.CreateVoucherParams)
	}{
		{name: "empty code", mutate: func(p *usecase.CreateVoucherParams) { p.VoucherCode = "" }},
		{name: "code with space", mutate: func(p *usecase.CreateVoucherParams) { p.VoucherCode = "V 1" }},
		{name: "empty description", mutate: func(p *usecase.CreateVoucherParams) { p.Description = "  " }},
		{name: "description too long", mutate: func(p *usecase.CreateVoucherParams) { p.Description = strings.Repeat("x", 256) }},
		{name: "zero amount", mutate: func(p *usecase.CreateVoucherParams) { p.Amount = "0" }},
		{name: "negative amount", mutate: func(p *usecase.CreateVoucherParams) { p.Amount = "-1" }},
		{name: "amount not a number", mutate: func(p *usecase.CreateVoucherParams) { p.Amount = "abc" }},
		{name: "amount with three decimals", mutate: func(p *usecase.CreateVoucherParams) { p.Amount = "1.234" }},
		{name: "amount above column maximum", mutate: func(p *usecase.CreateVoucherParams) { p.Amount = "10000000000.00" }},
	}

	for _, tc := range invalid {
		s.Run("validation: "+tc.name, func() {
			s.SetupTest()
			params := valid
			tc.mutate(&params)

			ack, err := s.useCase.CreateVoucherAsync(s.ctx, params)

			s.Nil(ack)
			s.True(errs.Is(err, usecase.ErrValidation), "got %v", err)
		})
	}

	s.Run("error: publish failure is a delivery failure", func() {
		s.SetupTest()
		s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).
			Return(errs.Mark(errors.New("broker unreachable"), errs.ErrDeliveryFailed))

		ack, err := s.useCase.CreateVoucherAsync(s.ctx, valid)

		s.Nil(ack)
		s.True(errs.Is(err, usecase.ErrDeliveryFailure))
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Published("CREATE", metrics.ResultFailed)))
	})
}

func (s *VoucherUseCaseTestSuite) TestRedeemAndExpireAsync() {
	testCases := []struct {
		name    string
		call    func(usecase.VoucherUseCase, context.Context, string) (*usecase.Acknowledgement, error)
		kind    command.Kind
		message string
	}{
		{
			name:    "redeem",
			call:    usecase.VoucherUseCase.RedeemVoucherAsync,
			kind:    command.KindRedeem,
			message: "Voucher redemption initiated for code: V1",
		},
		{
			name:    "expire",
			call:    usecase.VoucherUseCase.ExpireVoucherAsync,
			kind:    command.KindExpire,
			message: "Voucher expiration initiated for code: V1",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name+" success", func() {
			s.SetupTest()
			s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, cmd command.Command) error {
					s.Equal(tc.kind, cmd.Kind())
					s.Equal("V1", cmd.VoucherCode().String())
					return nil
				})

			ack, err := tc.call(s.useCase, s.ctx, "V1")

			s.Require().NoError(err)
			s.Equal(tc.message, ack.Message)
		})

		s.Run(tc.name+" invalid code never publishes", func() {
			s.SetupTest()

			_, err := tc.call(s.useCase, s.ctx, "bad code!")

			s.True(errs.Is(err, usecase.ErrValidation))
		})

		s.Run(tc.name+" publish failure", func() {
			s.SetupTest()
			s.publisher.EXPECT().Publish(s.ctx, gomock.Any()).Return(errors.New("nack"))

			_, err := tc.call(s.useCase, s.ctx, "V1")

			s.True(errs.Is(err, usecase.ErrDeliveryFailure))
		})
	}
}
