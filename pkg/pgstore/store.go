package pgstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// identifierRe bounds what NewStore accepts for table and column names.
// Names come from configuration, never from request data, but they are
// interpolated into SQL and must stay plain identifiers.
var identifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Entity is one tracked row with in-memory dirty tracking of its state
// column. Stage a change with Set, run the validation hook, then persist
// with Store.Save (or let Policy.Fire assign directly).
type Entity struct {
	id       uuid.UUID
	state    string
	hasState bool
	prev     string
	hasPrev  bool
	changed  bool
}

// ID returns the entity's primary key.
func (e *Entity) ID() uuid.UUID { return e.id }

// State returns the current (possibly staged, unpersisted) state value.
// ok is false when the column is NULL and nothing has been staged.
func (e *Entity) State() (string, bool) { return e.state, e.hasState }

// Changed reports whether the entity carries a staged, unpersisted change.
func (e *Entity) Changed() bool { return e.changed }

// Set stages a new state value without persisting it, recording the value it
// replaces so transition validation can see the source state.
func (e *Entity) Set(state string) {
	if !e.changed {
		e.prev, e.hasPrev = e.state, e.hasState
	}
	e.state = state
	e.hasState = true
	e.changed = true
}

// Store reads and writes the tracked state column and implements
// statekit.Host for the entities it loads.
type Store struct {
	pool     *pgxpool.Pool
	table    string
	idCol    string
	stateCol string
}

// NewStore builds a store over the given table. Table and column names are
// validated as SQL identifiers.
func NewStore(pool *pgxpool.Pool, table, idColumn, stateColumn string) (*Store, error) {
	for _, name := range []string{table, idColumn, stateColumn} {
		if !identifierRe.MatchString(name) {
			return nil, errors.Join(ErrInvalidIdentifier, fmt.Errorf("%q is not a valid table or column name", name))
		}
	}
	return &Store{
		pool:     pool,
		table:    table,
		idCol:    idColumn,
		stateCol: stateColumn,
	}, nil
}

// Load fetches the entity with the given id.
func (s *Store) Load(ctx context.Context, id uuid.UUID) (*Entity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, s.stateCol, s.table, s.idCol)

	var state *string
	if err := s.pool.QueryRow(ctx, query, id).Scan(&state); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.Join(ErrEntityNotFound, err)
		}
		return nil, err
	}

	e := &Entity{id: id}
	if state != nil {
		e.state = *state
		e.hasState = true
	}
	return e, nil
}

// Save persists a staged state change. It is a no-op for unchanged entities.
func (s *Store) Save(ctx context.Context, e *Entity) error {
	if !e.changed {
		return nil
	}
	if err := s.update(ctx, e.id, e.state); err != nil {
		return err
	}
	e.changed = false
	return nil
}

// Current implements statekit.Host.
func (s *Store) Current(e *Entity) (string, bool) {
	return e.state, e.hasState
}

// Previous implements statekit.Host. For an entity at rest the previous
// value is the current one, mirroring attribute change tracking in model
// frameworks.
func (s *Store) Previous(e *Entity) (string, bool) {
	if e.changed {
		return e.prev, e.hasPrev
	}
	return e.state, e.hasState
}

// Changed implements statekit.Host.
func (s *Store) Changed(e *Entity) bool { return e.changed }

// Assign implements statekit.Host: it sets the state column to target,
// persists the row, and rolls the entity's change tracking forward.
func (s *Store) Assign(ctx context.Context, e *Entity, target string) error {
	if err := s.update(ctx, e.id, target); err != nil {
		return err
	}
	e.prev, e.hasPrev = e.state, e.hasState
	e.state = target
	e.hasState = true
	e.changed = false
	return nil
}

func (s *Store) update(ctx context.Context, id uuid.UUID, state string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`, s.table, s.stateCol, s.idCol)

	tag, err := s.pool.Exec(ctx, query, state, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEntityNotFound
	}
	return nil
}
