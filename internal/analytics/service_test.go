package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Sanketkadam3921/financial-dashboard/internal/analytics"
	"github.com/Sanketkadam3921/financial-dashboard/internal/transaction"
)

func TestService_Summary(t *testing.T) {
	type testCase struct {
		name      string
		setupMock func(m *analytics.MockRepository)
		wantErr   bool
		check     func(t *testing.T, s analytics.Summary)
	}

	tests := []testCase{
		{
			name: "Success",
			setupMock: func(m *analytics.MockRepository) {
				m.EXPECT().
					ListAllTransactions(gomock.Any()).
					Return([]*transaction.Transaction{
						tx(transaction.CategoryRevenue, 100, date(2024, 1, 1)),
						tx(transaction.CategoryExpense, 40, date(2024, 1, 2)),
					}, nil)
			},
			check: func(t *testing.T, s analytics.Summary) {
				assert.Equal(t, 100.0, s.TotalRevenue)
				assert.Equal(t, 60.0, s.Balance)
			},
		},
		{
			name: "StoreError",
			setupMock: func(m *analytics.MockRepository) {
				m.EXPECT().
					ListAllTransactions(gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := analytics.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := analytics.NewService(repo)
			got, err := svc.Summary(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, got)
			}
		})
	}
}

func TestService_Forecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := analytics.NewMockRepository(ctrl)

	// One revenue transaction per month, rising by 100: a clean line.
	var txs []*transaction.Transaction
	for m := 1; m <= 12; m++ {
		txs = append(txs, tx(transaction.CategoryRevenue, float64(m*100), date(2024, m, 15)))
	}

	repo.EXPECT().ListAllTransactions(gomock.Any()).Return(txs, nil)

	svc := analytics.NewService(repo)
	points, err := svc.Forecast(context.Background())
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.InDelta(t, 1300, points[0].Revenue, 1e-9)
	assert.InDelta(t, 1500, points[2].Revenue, 1e-9)
}
