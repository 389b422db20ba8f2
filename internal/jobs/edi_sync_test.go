package jobs_test

import (
	"context"
	"errors"
	"testing"

	"oms/internal/domain/model"
	"oms/internal/jobs"
	repo "oms/internal/repository"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type SyncOrderRepoMock struct{ mock.Mock }

func (m *SyncOrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) Update(ctx context.Context, order model.Order) error {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, bool, error) {
	panic("not used in EDISyncJob tests")
}

func (m *SyncOrderRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestEDISyncJob_Run(t *testing.T) {
	orders := new(SyncOrderRepoMock)
	orders.On("CountAll", mock.Anything).Return(int64(3), nil)

	jobs.NewEDISyncJob(orders, zap.NewNop()).Run()
	orders.AssertExpectations(t)
}

// ポーリング失敗はログに落とすだけでpanicしない
func TestEDISyncJob_Run_DBError(t *testing.T) {
	orders := new(SyncOrderRepoMock)
	orders.On("CountAll", mock.Anything).Return(int64(0), errors.New("connection refused"))

	jobs.NewEDISyncJob(orders, zap.NewNop()).Run()
	orders.AssertExpectations(t)
}
