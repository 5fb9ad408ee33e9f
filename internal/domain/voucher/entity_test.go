//go:build unit

package voucher_test

import (
	"strings"
	"testing"
	"time"

	"voucher-pipeline/internal/domain/voucher"
	"voucher-pipeline/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.VoucherBuilder)
	errIs  error
}

func TestVoucher(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewVoucherBuilder()
		code, err := voucher.NewCode(b.Code)
		require.NoError(t, err)
		desc, err := voucher.NewDescription(b.Description)
		require.NoError(t, err)
		amount, err := voucher.ParseAmount(b.Amount)
		require.NoError(t, err)

		actual := voucher.NewVoucher(code, desc, amount, b.CreatedAt)

		assert.Equal(t, voucher.StatusActive, actual.Status())
		assert.True(t, actual.IsActive())
		assert.Equal(t, "SUMMER-2024", actual.Code().String())
		assert.Equal(t, "25.50", actual.Amount().String())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("code validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "letters digits dash underscore", mutate: func(b *builder.VoucherBuilder) { b.WithCode("aB_9-x") }},
			{name: "maximum length", mutate: func(b *builder.VoucherBuilder) { b.WithCode(strings.Repeat("A", voucher.MaxCodeLength)) }},
			{name: "too long", mutate: func(b *builder.VoucherBuilder) { b.WithCode(strings.Repeat("A", voucher.MaxCodeLength+1)) }, errIs: voucher.ErrInvalidCode},
			{name: "empty", mutate: func(b *builder.VoucherBuilder) { b.WithCode("") }, errIs: voucher.ErrInvalidCode},
			{name: "blank", mutate: func(b *builder.VoucherBuilder) { b.WithCode("   ") }, errIs: voucher.ErrInvalidCode},
			{name: "contains space", mutate: func(b *builder.VoucherBuilder) { b.WithCode("A B") }, errIs: voucher.ErrInvalidCode},
			{name: "contains slash", mutate: func(b *builder.VoucherBuilder) { b.WithCode("A/B") }, errIs: voucher.ErrInvalidCode},
		})
	})

	t.Run("description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single character", mutate: func(b *builder.VoucherBuilder) { b.Description = "a" }},
			{name: "maximum length", mutate: func(b *builder.VoucherBuilder) { b.Description = strings.Repeat("d", voucher.MaxDescriptionLength) }},
			{name: "too long", mutate: func(b *builder.VoucherBuilder) { b.Description = strings.Repeat("d", voucher.MaxDescriptionLength+1) }, errIs: voucher.ErrInvalidDescription},
			{name: "whitespace only", mutate: func(b *builder.VoucherBuilder) { b.Description = " \t " }, errIs: voucher.ErrInvalidDescription},
		})
	})

	t.Run("amount validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "integer", mutate: func(b *builder.VoucherBuilder) { b.Amount = "10" }},
			{name: "two decimals", mutate: func(b *builder.VoucherBuilder) { b.Amount = "0.01" }},
			{name: "zero", mutate: func(b *builder.VoucherBuilder) { b.Amount = "0" }, errIs: voucher.ErrInvalidAmount},
			{name: "negative", mutate: func(b *builder.VoucherBuilder) { b.Amount = "-5.00" }, errIs: voucher.ErrInvalidAmount},
			{name: "three decimals", mutate: func(b *builder.VoucherBuilder) { b.Amount = "1.005" }, errIs: voucher.ErrInvalidAmount},
			{name: "not a number", mutate: func(b *builder.VoucherBuilder) { b.Amount = "ten" }, errIs: voucher.ErrInvalidAmount},
			{name: "column maximum", mutate: func(b *builder.VoucherBuilder) { b.Amount = "9999999999.99" }},
			{name: "above column maximum", mutate: func(b *builder.VoucherBuilder) { b.Amount = "10000000000.00" }, errIs: voucher.ErrInvalidAmount},
			{name: "exponent notation overflow", mutate: func(b *builder.VoucherBuilder) { b.Amount = "1e15" }, errIs: voucher.ErrInvalidAmount},
			{name: "twenty digits", mutate: func(b *builder.VoucherBuilder) { b.Amount = "99999999999999999999" }, errIs: voucher.ErrInvalidAmount},
		})
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewVoucherBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}

func TestVoucher_Transitions(t *testing.T) {
	later := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		from     voucher.Status
		apply    func(*voucher.Voucher, time.Time) error
		expected voucher.Status
		errIs    error
	}{
		{name: "redeem active", from: voucher.StatusActive, apply: (*voucher.Voucher).Redeem, expected: voucher.StatusRedeemed},
		{name: "expire active", from: voucher.StatusActive, apply: (*voucher.Voucher).Expire, expected: voucher.StatusExpired},
		{name: "redeem redeemed", from: voucher.StatusRedeemed, apply: (*voucher.Voucher).Redeem, expected: voucher.StatusRedeemed, errIs: voucher.ErrInvalidTransition},
		{name: "redeem expired", from: voucher.StatusExpired, apply: (*voucher.Voucher).Redeem, expected: voucher.StatusExpired, errIs: voucher.ErrInvalidTransition},
		{name: "expire redeemed", from: voucher.StatusRedeemed, apply: (*voucher.Voucher).Expire, expected: voucher.StatusRedeemed, errIs: voucher.ErrInvalidTransition},
		{name: "expire expired", from: voucher.StatusExpired, apply: (*voucher.Voucher).Expire, expected: voucher.StatusExpired, errIs: voucher.ErrInvalidTransition},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewVoucherBuilder().WithStatus(tc.from)
			v := b.MustBuildDomain()

			err := tc.apply(v, later)

			assert.Equal(t, tc.expected, v.Status())
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, b.UpdatedAt, v.UpdatedAt(), "rejected transition must not touch updatedAt")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, later, v.UpdatedAt())
			assert.Equal(t, b.CreatedAt, v.CreatedAt())
		})
	}
}

func TestStatus(t *testing.T) {
	assert.True(t, voucher.StatusActive.CanTransitionTo(voucher.StatusRedeemed))
	assert.True(t, voucher.StatusActive.CanTransitionTo(voucher.StatusExpired))
	assert.False(t, voucher.StatusActive.CanTransitionTo(voucher.StatusActive))
	assert.False(t, voucher.StatusRedeemed.CanTransitionTo(voucher.StatusActive))
	assert.False(t, voucher.StatusExpired.CanTransitionTo(voucher.StatusRedeemed))

	assert.False(t, voucher.StatusActive.IsTerminal())
	assert.True(t, voucher.StatusRedeemed.IsTerminal())
	assert.True(t, voucher.StatusExpired.IsTerminal())

	assert.True(t, voucher.StatusExpired.IsValid())
	assert.False(t, voucher.Status("active").IsValid())
}

func TestAmount(t *testing.T) {
	t.Run("renders fixed scale", func(t *testing.T) {
		a, err := voucher.NewAmount(decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.Equal(t, "5.00", a.String())
	})

	t.Run("equal ignores representation", func(t *testing.T) {
		a, err := voucher.ParseAmount("5.1")
		require.NoError(t, err)
		b, err := voucher.ParseAmount("5.10")
		require.NoError(t, err)
		assert.True(t, a.Equal(b))
	})
}
