package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics tracks checkout activity and catalog health.
type BusinessMetrics struct {
	logger *zap.Logger

	ordersPlaced    *Counter
	orderValue      *Histogram
	checkoutFailure *Counter
	paymentUpdates  *Counter
	cartsPurged     *Counter
	lowStock        *Gauge

	stock          LowStockCounter
	stockThreshold int

	stopCh      chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once
	wg          sync.WaitGroup
}

// LowStockCounter counts products whose inventory is below threshold
type LowStockCounter interface {
	CountLowStock(ctx context.Context, threshold int) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter          metric.Meter
	Logger         *zap.Logger
	Stock          LowStockCounter
	StockThreshold int // default 10
}

// NewBusinessMetrics registers the storefront instruments on cfg.Meter.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	threshold := cfg.StockThreshold
	if threshold <= 0 {
		threshold = 10
	}

	bm := &BusinessMetrics{
		logger:         logger,
		stock:          cfg.Stock,
		stockThreshold: threshold,
		stopCh:         make(chan struct{}),
	}

	var err error
	if bm.ordersPlaced, err = NewCounter(cfg.Meter,
		"storefront.orders.placed", "Orders placed through checkout", "{order}"); err != nil {
		return nil, err
	}
	if bm.orderValue, err = NewHistogram(cfg.Meter, HistogramOpts{
		Name:        "storefront.order.value",
		Description: "Total value of placed orders",
		Unit:        "{currency}",
		Boundaries:  OrderValueBuckets,
	}); err != nil {
		return nil, err
	}
	if bm.checkoutFailure, err = NewCounter(cfg.Meter,
		"storefront.checkout.failures", "Checkouts rejected or rolled back", "{checkout}"); err != nil {
		return nil, err
	}
	if bm.paymentUpdates, err = NewCounter(cfg.Meter,
		"storefront.payment.updates", "Payment status changes by target status", "{order}"); err != nil {
		return nil, err
	}
	if bm.cartsPurged, err = NewCounter(cfg.Meter,
		"storefront.carts.purged", "Abandoned carts removed", "{cart}"); err != nil {
		return nil, err
	}
	if bm.lowStock, err = NewGauge(cfg.Meter,
		"storefront.products.low_stock", "Products with inventory below the low stock threshold", "{product}"); err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordOrderPlaced counts a placed order and records its value
func (bm *BusinessMetrics) RecordOrderPlaced(ctx context.Context, total decimal.Decimal) {
	if bm == nil {
		return
	}
	bm.ordersPlaced.Inc(ctx)
	bm.orderValue.Record(ctx, total.InexactFloat64())
}

// RecordCheckoutFailure counts a failed checkout by outcome, e.g. "empty_cart"
func (bm *BusinessMetrics) RecordCheckoutFailure(ctx context.Context, outcome string) {
	if bm == nil {
		return
	}
	bm.checkoutFailure.Inc(ctx, AttrOutcome.String(outcome))
}

// RecordPaymentUpdate counts a payment status change
func (bm *BusinessMetrics) RecordPaymentUpdate(ctx context.Context, status string) {
	if bm == nil {
		return
	}
	bm.paymentUpdates.Inc(ctx, AttrPaymentStatus.String(status))
}

// RecordCartsPurged adds n removed carts
func (bm *BusinessMetrics) RecordCartsPurged(ctx context.Context, n int64) {
	if bm == nil || n <= 0 {
		return
	}
	bm.cartsPurged.Add(ctx, n)
}

// StartPeriodicCollection samples the low stock gauge every interval until
// Stop is called or ctx ends. Only the first call starts a collector.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	if bm == nil || bm.stock == nil {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	bm.collectOnce.Do(func() {
		bm.wg.Add(1)
		go func() {
			defer bm.wg.Done()
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			bm.collectStock(ctx)
			for {
				select {
				case <-ticker.C:
					bm.collectStock(ctx)
				case <-bm.stopCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	})
}

func (bm *BusinessMetrics) collectStock(ctx context.Context) {
	n, err := bm.stock.CountLowStock(ctx, bm.stockThreshold)
	if err != nil {
		bm.logger.Warn("failed to collect low stock count", zap.Error(err))
		return
	}
	bm.lowStock.Record(ctx, n)
}

// Stop ends periodic collection. Safe to call multiple times.
func (bm *BusinessMetrics) Stop() {
	if bm == nil {
		return
	}
	bm.stopOnce.Do(func() {
		close(bm.stopCh)
		bm.wg.Wait()
	})
}
