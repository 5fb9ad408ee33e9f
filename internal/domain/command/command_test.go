//go:build unit

package command_test

import (
	"testing"

	"voucher-pipeline/internal/domain/command"
	"voucher-pipeline/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestKind_IsValid(t *testing.T) {
	assert.True(t, command.KindCreate.IsValid())
	assert.True(t, command.KindRedeem.IsValid())
	assert.True(t, command.KindExpire.IsValid())
	assert.False(t, command.Kind("create").IsValid(), "kinds are case-sensitive")
	assert.False(t, command.Kind("CANCEL").IsValid())
	assert.False(t, command.Kind("").IsValid())
}

func TestCommand_Variants(t *testing.T) {
	b := builder.NewVoucherBuilder()

	testCases := []struct {
		name string
		cmd  command.Command
		kind command.Kind
	}{
		{name: "create", cmd: b.BuildCreateCommand(), kind: command.KindCreate},
		{name: "redeem", cmd: b.BuildRedeemCommand(), kind: command.KindRedeem},
		{name: "expire", cmd: b.BuildExpireCommand(), kind: command.KindExpire},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.cmd.Kind())
			assert.Equal(t, b.Code, tc.cmd.VoucherCode().String())
		})
	}
}
