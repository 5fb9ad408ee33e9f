//go:build unit

package messaging_test

import (
	"encoding/json"
	"testing"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/internal/infra/messaging"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	b := builder.NewVoucherBuilder()

	t.Run("create carries description and amount", func(t *testing.T) {
		body, err := messaging.Encode(b.BuildCreateCommand())
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"voucherCode":"SUMMER-2024","description":"Summer campaign voucher","amount":25.50,"action":"CREATE"}`,
			string(body))
	})

	t.Run("redeem omits create-only fields", func(t *testing.T) {
		body, err := messaging.Encode(b.BuildRedeemCommand())
		require.NoError(t, err)
		assert.JSONEq(t, `{"voucherCode":"SUMMER-2024","action":"REDEEM"}`, string(body))
	})
}

func TestDecode(t *testing.T) {
	t.Run("create round trip keeps the amount exact", func(t *testing.T) {
		original := builder.NewVoucherBuilder().With(func(b *builder.VoucherBuilder) { b.Amount = "0.10" }).BuildCreateCommand()
		body, err := messaging.Encode(original)
		require.NoError(t, err)

		decoded, err := messaging.Decode(body)
		require.NoError(t, err)

		create, ok := decoded.(command.Create)
		require.True(t, ok)
		assert.Equal(t, original.Code, create.Code)
		assert.Equal(t, original.Description, create.Description)
		assert.True(t, original.Amount.Equal(create.Amount))
	})

	t.Run("amount as JSON string is accepted", func(t *testing.T) {
		decoded, err := messaging.Decode([]byte(`{"voucherCode":"V1","description":"d","amount":"5.00","action":"CREATE"}`))
		require.NoError(t, err)
		assert.Equal(t, "5.00", decoded.(command.Create).Amount.String())
	})

	t.Run("expire ignores stray create fields", func(t *testing.T) {
		decoded, err := messaging.Decode([]byte(`{"voucherCode":"V1","description":"x","amount":1,"action":"EXPIRE"}`))
		require.NoError(t, err)
		assert.Equal(t, command.Expire{Code: "V1"}, decoded)
	})

	testCases := []struct {
		name  string
		body  string
		errIs error
	}{
		{name: "not JSON", body: `not-json`, errIs: messaging.ErrMalformedEnvelope},
		{name: "missing action", body: `{"voucherCode":"V1"}`, errIs: messaging.ErrMalformedEnvelope},
		{name: "lower-case action is unknown", body: `{"voucherCode":"V1","action":"redeem"}`, errIs: messaging.ErrUnknownCommand},
		{name: "future action", body: `{"voucherCode":"V1","action":"CANCEL"}`, errIs: messaging.ErrUnknownCommand},
		{name: "missing code", body: `{"action":"REDEEM"}`, errIs: messaging.ErrMalformedEnvelope},
		{name: "create without amount", body: `{"voucherCode":"V1","description":"d","action":"CREATE"}`, errIs: messaging.ErrMalformedEnvelope},
		{name: "create with amount above column maximum", body: `{"voucherCode":"V1","description":"d","amount":10000000000,"action":"CREATE"}`, errIs: messaging.ErrMalformedEnvelope},
		{name: "create with negative amount", body: `{"voucherCode":"V1","description":"d","amount":-1,"action":"CREATE"}`, errIs: messaging.ErrMalformedEnvelope},
		{name: "create without description", body: `{"voucherCode":"V1","amount":1,"action":"CREATE"}`, errIs: messaging.ErrMalformedEnvelope},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := messaging.Decode([]byte(tc.body))
			assert.Nil(t, decoded)
			assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
		})
	}
}

func TestEnvelope_WireNames(t *testing.T) {
	var env messaging.Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"voucherCode":"A","description":"B","amount":1.5,"action":"CREATE"}`), &env))
	assert.Equal(t, "A", env.VoucherCode)
	assert.Equal(t, "B", env.Description)
	assert.Equal(t, "1.5", env.Amount.String())
	assert.Equal(t, "CREATE", env.Action)
}
