// Package pgstore provides a PostgreSQL-backed host adapter for statekit.
//
// It implements statekit.Host over a single state column of an arbitrary
// table using the pgx/v5 driver: entities are loaded by UUID primary key,
// staged changes are tracked in memory so the validation hook can run before
// persistence, and assignments are persisted with a plain UPDATE. The
// package also carries the connection, migration, and health-check plumbing
// a service needs to bootstrap the store (pgx/v5 for connectivity, goose/v3
// for schema migrations).
//
// # Usage
//
//	var cfg pgstore.Config
//	if err := env.Parse(&cfg); err != nil {
//		panic(err)
//	}
//
//	ctx := context.Background()
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer pool.Close()
//
//	if err := pgstore.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//		panic(err)
//	}
//
//	store, err := pgstore.NewStore(pool, cfg.Table, cfg.IDColumn, cfg.StateColumn)
//	if err != nil {
//		panic(err)
//	}
//
//	policy := statekit.Bind(table, store)
//
//	order, err := store.Load(ctx, orderID)
//	if err != nil {
//		// handle ErrEntityNotFound etc.
//	}
//	order.Set("in_progress")
//	if err := policy.Validate(order); err != nil {
//		// blocked transition, nothing persisted
//	}
//	if err := store.Save(ctx, order); err != nil {
//		// persistence failure
//	}
//
// # Configuration
//
// All configuration values are provided through environment variables so
// they can be tuned per-environment without code changes. Refer to the field
// tags in Config for exact variable names and defaults. Table and column
// names are validated as SQL identifiers before they are interpolated into
// queries.
package pgstore
