package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// PgDatabase инкапсулирует подключение к удалённому хранилищу и управление миграциями.
type PgDatabase struct {
	Pool    *pgxpool.Pool
	poolCfg *pgxpool.Config
	cfg     *cfg.StoreCfg
}

// Connect создаёт пул соединений с удалённым хранилищем.
// Адрес берётся из STORE_URL, ключ доступа подставляется паролем.
// Пул открывает соединения лениво, поэтому недоступный сервер здесь ошибкой не считается.
func Connect(cfg *cfg.StoreCfg) (*PgDatabase, error) {
	const op = "PgDatabase.Connect"

	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	poolCfg.ConnConfig.Password = cfg.AccessKey
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &PgDatabase{Pool: pool, poolCfg: poolCfg, cfg: cfg}, nil
}

func (db *PgDatabase) Ping(ctx context.Context) error {
	const op = "PgDatabase.Ping"
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := db.Pool.Ping(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close корректно закрывает пул соединений к базе данных.
func (db *PgDatabase) Close() {
	if db.Pool != nil {
		db.Pool.Close()
	}
}

// RunMigrations применяет ожидающие миграции из директории, указанной в конфигурации.
func (db *PgDatabase) RunMigrations(logger logger.Logger) error {
	const (
		op                 = "PgDatabase.RunMigrations"
		databaseDriverName = "postgres"
	)

	sqlDb := stdlib.OpenDB(*db.poolCfg.ConnConfig)
	defer sqlDb.Close()

	driver, err := postgres.WithInstance(sqlDb, &postgres.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+db.cfg.MigrationsPath,
		databaseDriverName,
		driver,
	)
	if err != nil {
		return e.Wrap(op, err)
	}

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return e.Wrap(op, err)
	}

	logger.Infof("migrations applied successfully")
	return nil
}
