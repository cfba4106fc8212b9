package workers

import (
	"context"
	"time"

	"renta_backend/internal/logger"
	"renta_backend/internal/services"
)

// OrderWorker - фоновая зачистка просроченных заказов
type OrderWorker struct {
	orderService services.OrderService
	interval     time.Duration
}

func NewOrderWorker(orderService services.OrderService, interval time.Duration) *OrderWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &OrderWorker{
		orderService: orderService,
		interval:     interval,
	}
}

// Start запускает фоновые задачи для заказов
func (w *OrderWorker) Start(ctx context.Context) {
	go w.sweepExpiredOrders(ctx)
}

// sweepExpiredOrders переводит заказы с прошедшей датой окончания
// в Expired и возвращает их единицы в остаток
func (w *OrderWorker) sweepExpiredOrders(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	// Первый проход сразу при старте: после простоя сервиса
	// просроченные заказы не должны ждать целый интервал
	w.runSweep(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Order worker stopped")
			return
		case <-ticker.C:
			w.runSweep(ctx)
		}
	}
}

func (w *OrderWorker) runSweep(ctx context.Context) {
	swept, err := w.orderService.SweepExpired(ctx, time.Now())
	if err != nil {
		logger.WorkerLog("order_worker", "sweep_expired", err)
		return
	}
	if swept > 0 {
		logger.Info("Expired orders swept", "count", swept)
	}
}
