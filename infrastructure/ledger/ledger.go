package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/dailysale/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Namespaces: "local" guarda as promoções desta máquina, "sync" guarda o que acompanha o usuário
var (
	salesKey      = []byte("local/sales")
	licenseKeyKey = []byte("sync/license_key")
)

const maxConflictRetries = 3

// Ledger é o registro local de promoções e da chave de licença, sobre badger
type Ledger struct {
	db *badger.DB
}

// Open abre (ou cria) o ledger no diretório informado
func Open(path string) (*Ledger, error) {
	return open(badger.DefaultOptions(path))
}

// OpenInMemory abre um ledger sem persistência em disco
func OpenInMemory() (*Ledger, error) {
	return open(badger.DefaultOptions("").WithInMemory(true))
}

func open(opts badger.Options) (*Ledger, error) {
	opts = opts.WithLogger(&badgerLogger{entry: logrus.WithField("component", "ledger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir o ledger: %w", err)
	}
	return &Ledger{db: db}, nil
}

func (l *Ledger) Close() error {
	return l.db.Close()
}

// LoadSales devolve as promoções na ordem de inserção
func (l *Ledger) LoadSales(ctx context.Context) ([]domain.Sale, error) {
	var sales []domain.Sale
	err := l.db.View(func(txn *badger.Txn) error {
		var err error
		sales, err = readSales(txn)
		return err
	})
	if err != nil {
		return nil, err
	}
	return sales, ctx.Err()
}

// SaveSales substitui a lista inteira
func (l *Ledger) SaveSales(ctx context.Context, sales []domain.Sale) error {
	return l.update(ctx, func(txn *badger.Txn) error {
		return writeSales(txn, sales)
	})
}

// AppendSales acrescenta um lote inteiro numa única transação
func (l *Ledger) AppendSales(ctx context.Context, batch ...domain.Sale) error {
	if len(batch) == 0 {
		return nil
	}
	return l.update(ctx, func(txn *badger.Txn) error {
		sales, err := readSales(txn)
		if err != nil {
			return err
		}
		return writeSales(txn, append(sales, batch...))
	})
}

// UpdateSaleStatus aplica uma atualização parcial por id
func (l *Ledger) UpdateSaleStatus(ctx context.Context, id string, update domain.SaleUpdate) error {
	return l.update(ctx, func(txn *badger.Txn) error {
		sales, err := readSales(txn)
		if err != nil {
			return err
		}
		for i := range sales {
			if sales[i].ID != id {
				continue
			}
			if err := update.Apply(&sales[i]); err != nil {
				return err
			}
			return writeSales(txn, sales)
		}
		return fmt.Errorf("%w: %s", domain.ErrSaleNotFound, id)
	})
}

// RemoveSaleByID remove a promoção; id inexistente não é erro
func (l *Ledger) RemoveSaleByID(ctx context.Context, id string) error {
	return l.update(ctx, func(txn *badger.Txn) error {
		sales, err := readSales(txn)
		if err != nil {
			return err
		}
		kept := sales[:0]
		for _, sale := range sales {
			if sale.ID != id {
				kept = append(kept, sale)
			}
		}
		if len(kept) == len(sales) {
			return nil
		}
		return writeSales(txn, kept)
	})
}

// GetSale busca uma promoção por id
func (l *Ledger) GetSale(ctx context.Context, id string) (*domain.Sale, error) {
	sales, err := l.LoadSales(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sales {
		if sales[i].ID == id {
			return &sales[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSaleNotFound, id)
}

// LoadLicenseKey devolve "" quando nenhuma chave foi salva
func (l *Ledger) LoadLicenseKey(ctx context.Context) (string, error) {
	var key string
	err := l.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(licenseKeyKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			key = string(val)
			return nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("erro ao ler a chave de licença: %w", err)
	}
	return key, ctx.Err()
}

func (l *Ledger) SaveLicenseKey(ctx context.Context, key string) error {
	return l.update(ctx, func(txn *badger.Txn) error {
		return txn.Set(licenseKeyKey, []byte(key))
	})
}

// update repete a transação em caso de conflito entre escritores concorrentes
func (l *Ledger) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxConflictRetries; attempt++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		err = l.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func readSales(txn *badger.Txn) ([]domain.Sale, error) {
	item, err := txn.Get(salesKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return []domain.Sale{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler promoções: %w", err)
	}

	var sales []domain.Sale
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &sales)
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar promoções: %w", err)
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	return sales, nil
}

func writeSales(txn *badger.Txn, sales []domain.Sale) error {
	if sales == nil {
		sales = []domain.Sale{}
	}
	raw, err := json.Marshal(sales)
	if err != nil {
		return fmt.Errorf("erro ao codificar promoções: %w", err)
	}
	return txn.Set(salesKey, raw)
}

// badgerLogger rebaixa o Info do badger para Debug; ele é verboso na abertura e compactação
type badgerLogger struct {
	entry *logrus.Entry
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.entry.Errorf(format, args...)
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.entry.Warnf(format, args...)
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.entry.Debugf(format, args...)
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.entry.Tracef(format, args...)
}
