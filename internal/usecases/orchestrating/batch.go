package orchestrating

import (
	"context"
	"sync"

	"github.com/vfg2006/dailysale/internal/domain"
)

// batchRecorder guarda as promoções do lote em memória até a gravação única no fim.
// O assistente registra nele a transição para running.
type batchRecorder struct {
	mu    sync.Mutex
	sales []domain.Sale
}

func (b *batchRecorder) add(sale domain.Sale) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sales = append(b.sales, sale)
}

func (b *batchRecorder) UpdateSaleStatus(ctx context.Context, id string, update domain.SaleUpdate) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.sales {
		if b.sales[i].ID == id {
			return update.Apply(&b.sales[i])
		}
	}
	return domain.ErrSaleNotFound
}

func (b *batchRecorder) snapshot() []domain.Sale {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.Sale, len(b.sales))
	copy(out, b.sales)
	return out
}

func (b *batchRecorder) status(id string) domain.SaleStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, sale := range b.sales {
		if sale.ID == id {
			return sale.Status
		}
	}
	return ""
}
