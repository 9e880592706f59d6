package workload

import (
	"context"
	"encoding/binary"

	badger "github.com/dgraph-io/badger/v3"
)

const badgerPutName = "badger-put"

// badgerPutWorkload writes one fresh key per run; the sequence survives across runs.
type badgerPutWorkload struct {
	db    *badger.DB
	seq   uint64
	value []byte
}

func newBadgerPutWorkload(_ context.Context, cfg Config) (Workload, error) {
	opts := badger.DefaultOptions(cfg.BadgerDir).WithLogger(nil)
	if cfg.BadgerDir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerPutWorkload{
		db:    db,
		value: make([]byte, 64),
	}, nil
}

func (w *badgerPutWorkload) Name() string {
	return badgerPutName
}

func (w *badgerPutWorkload) Run() error {
	w.seq++
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, w.seq)
	return w.db.Update(func(tx *badger.Txn) error {
		return tx.Set(key, w.value)
	})
}

func (w *badgerPutWorkload) Close() error {
	return w.db.Close()
}
