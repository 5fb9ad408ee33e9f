//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"voucher-pipeline/internal/infra"
	"voucher-pipeline/internal/infra/readstore"
	sqlc "voucher-pipeline/internal/infra/sqlc/generated"
	"voucher-pipeline/tests/common/builder"
	readstoremock "voucher-pipeline/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestVoucherReadStore_List(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		setupMock   func(*readstoremock.MockVoucherReadQueries, sqlc.DBTX)
		expectCodes []string
		expectKind  infra.RepositoryErrorKind
	}{
		{
			name: "success: rows mapped in order",
			setupMock: func(mock *readstoremock.MockVoucherReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListVouchers(ctx, db).Return([]sqlc.Vouchers{
					builder.NewVoucherBuilder().WithCode("A").BuildInfra(),
					builder.NewVoucherBuilder().WithCode("B").BuildInfra(),
				}, nil)
			},
			expectCodes: []string{"A", "B"},
		},
		{
			name: "success: empty table",
			setupMock: func(mock *readstoremock.MockVoucherReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListVouchers(ctx, db).Return(nil, nil)
			},
			expectCodes: []string{},
		},
		{
			name: "error: database failure",
			setupMock: func(mock *readstoremock.MockVoucherReadQueries, db sqlc.DBTX) {
				mock.EXPECT().ListVouchers(ctx, db).Return(nil, errors.New("connection lost"))
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
			db := &mockDBTX{}
			store := readstore.NewVoucherReadStore(mockQueries, db)
			tc.setupMock(mockQueries, db)

			views, err := store.List(ctx)

			if tc.expectKind != "" {
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			codes := make([]string, 0, len(views))
			for _, v := range views {
				codes = append(codes, v.VoucherCode)
			}
			assert.Equal(t, tc.expectCodes, codes)
		})
	}
}

func TestVoucherReadStore_FindByCode(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
		db := &mockDBTX{}
		store := readstore.NewVoucherReadStore(mockQueries, db)
		b := builder.NewVoucherBuilder()
		mockQueries.EXPECT().GetVoucherByCode(ctx, db, b.Code).Return(b.BuildInfra(), nil)

		view, err := store.FindByCode(ctx, b.Code)

		require.NoError(t, err)
		assert.Equal(t, b.BuildView().VoucherCode, view.VoucherCode)
		assert.True(t, decimal.RequireFromString("25.5").Equal(view.Amount))
		assert.Equal(t, "ACTIVE", view.Status)
	})

	t.Run("error: not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockVoucherReadQueries(ctrl)
		db := &mockDBTX{}
		store := readstore.NewVoucherReadStore(mockQueries, db)
		mockQueries.EXPECT().GetVoucherByCode(ctx, db, "v1").Return(sqlc.Vouchers{}, pgx.ErrNoRows)

		view, err := store.FindByCode(ctx, "v1")

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
