package tr

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// Manager открывает транзакцию через go-transaction-manager и кладёт её в контекст,
// откуда её забирают репозитории через QuerierFromCtx.
type Manager struct {
	db transaction.Transactional
}

func NewManager(db transaction.Transactional) *Manager {
	return &Manager{db: db}
}

// Do выполняет fn в транзакции. Ошибка fn откатывает транзакцию.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	const op = "tr.Manager.Do"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.db)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Откатывать нечего, если драйвер не отдал pgx.Tx.
	var raw any = tx.Transaction()
	pgxTx, ok := raw.(pgx.Tx)
	if !ok || pgxTx == nil {
		return e.Wrap(op, ErrUnexpectedTx)
	}

	defer func() {
		if err != nil && tx.IsActive() {
			_ = tx.Rollback(ctx)
		}
	}()

	if err = fn(WithTx(ctx, pgxTx)); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
