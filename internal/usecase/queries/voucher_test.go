//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"voucher-pipeline/internal/infra"
	"voucher-pipeline/internal/pkg/errs"
	"voucher-pipeline/internal/usecase/queries"
	"voucher-pipeline/tests/common/builder"
	queriesmock "voucher-pipeline/tests/mock/queries"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVoucherQueries_GetVoucher(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setupMock func(*queriesmock.MockVoucherReadStore)
		errIs     error
	}{
		{
			name: "success",
			setupMock: func(m *queriesmock.MockVoucherReadStore) {
				m.EXPECT().FindByCode(ctx, "SUMMER-2024").Return(builder.NewVoucherBuilder().BuildView(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(m *queriesmock.MockVoucherReadStore) {
				m.EXPECT().FindByCode(ctx, "SUMMER-2024").
					Return(nil, infra.WrapRepoErr("voucher not found", pgx.ErrNoRows, infra.KindNotFound))
			},
			errIs: queries.ErrVoucherNotFound,
		},
		{
			name: "database failure",
			setupMock: func(m *queriesmock.MockVoucherReadStore) {
				m.EXPECT().FindByCode(ctx, "SUMMER-2024").
					Return(nil, infra.WrapRepoErr("boom", errors.New("timeout")))
			},
			errIs: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockVoucherReadStore(ctrl)
			tc.setupMock(store)

			view, err := queries.NewVoucherQueries(store).GetVoucher(ctx, "SUMMER-2024")

			if tc.errIs != nil {
				assert.Nil(t, view)
				assert.True(t, errs.Is(err, tc.errIs), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "SUMMER-2024", view.VoucherCode)
		})
	}
}

func TestVoucherQueries_ListVouchers(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockVoucherReadStore(ctrl)
	store.EXPECT().List(ctx).Return(nil, nil)

	views, err := queries.NewVoucherQueries(store).ListVouchers(ctx)

	require.NoError(t, err)
	assert.NotNil(t, views, "an empty list must serialise as [] not null")
	assert.Empty(t, views)
}
