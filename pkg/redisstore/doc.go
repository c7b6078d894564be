// Package redisstore provides a Redis-backed host adapter for statekit.
//
// Each entity is a Redis hash keyed by a configurable prefix plus the entity
// id; the tracked state lives in one hash field. The adapter implements
// statekit.Host with the same staging semantics as pkg/pgstore: changes are
// staged in memory with Entity.Set so the validation hook can run before
// anything is written, and assignments persist with a single HSET.
//
// # Usage
//
//	var cfg redisstore.Config
//	if err := env.Parse(&cfg); err != nil {
//		panic(err)
//	}
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//		panic(err)
//	}
//	defer client.Close()
//
//	store, err := redisstore.NewStore(client, cfg.KeyPrefix, cfg.StateField)
//	if err != nil {
//		panic(err)
//	}
//	policy := statekit.Bind(table, store)
//
// Unlike a relational UPDATE, HSET is an upsert: assigning to an id that was
// never created writes the hash rather than failing. Load is the operation
// that distinguishes missing entities (ErrEntityNotFound).
package redisstore
