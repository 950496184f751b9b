package orchestrating

import (
	"context"

	"github.com/vfg2006/dailysale/internal/domain"
)

// SaleStore é o ledger persistente de promoções
type SaleStore interface {
	LoadSales(ctx context.Context) ([]domain.Sale, error)
	AppendSales(ctx context.Context, batch ...domain.Sale) error
	GetSale(ctx context.Context, id string) (*domain.Sale, error)
	UpdateSaleStatus(ctx context.Context, id string, update domain.SaleUpdate) error
	RemoveSaleByID(ctx context.Context, id string) error
}

// LicenseChecker consulta e consome a licença antes de qualquer automação
type LicenseChecker interface {
	CheckLicense(ctx context.Context, requestedRuns int) (*domain.LicenseInfo, error)
}
