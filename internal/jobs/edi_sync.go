package jobs

import (
	"context"
	"time"

	repo "oms/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EDISyncJob はSPS側の新規860/850受注を定期ポーリングする。
// 実際のEDIコネクタは接続先がないためシミュレーションに留め、
// 取り込み自体はPOST /api/sps/ordersで受ける。
type EDISyncJob struct {
	orders repo.OrderRepository
	logger *zap.Logger
}

func NewEDISyncJob(orders repo.OrderRepository, logger *zap.Logger) *EDISyncJob {
	return &EDISyncJob{orders: orders, logger: logger}
}

// Run は1回分のポーリング。エラーはログに落とすだけで伝播しない
func (j *EDISyncJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	batchID := uuid.NewString()
	j.logger.Info("edi sync started", zap.String("batch_id", batchID))

	total, err := j.orders.CountAll(ctx)
	if err != nil {
		j.logger.Error("edi sync failed", zap.String("batch_id", batchID), zap.Error(err))
		return
	}

	//接続先がないので新着0件として完了を記録する
	j.logger.Info("edi sync completed",
		zap.String("batch_id", batchID),
		zap.Int64("known_orders", total),
		zap.Int("new_orders", 0),
	)
}
