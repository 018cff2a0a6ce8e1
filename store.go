package fruitbook

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage keys. The whole business state lives under these four keys, and
// all four are written back after every recorded transaction.
const (
	KeyTransactions = "transactions.jsonl"
	KeyWarehouse    = "warehouse.json"
	KeySuppliers    = "suppliers.json"
	KeyCustomers    = "customers.json"
)

// Store is the flat key-value persistence the ledger is saved to. A missing
// key is not an error: it reads as absent and means empty state.
type Store interface {
	Get(key string) (value []byte, found bool, err error)
	Set(key string, value []byte) error
}

// DirStore is a Store keeping one file per key inside a directory. The
// directory is created on first write.
type DirStore struct {
	dir string
}

// NewDirStore creates a store rooted at dir.
func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (s *DirStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, true, nil
}

func (s *DirStore) Set(key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	path := filepath.Join(s.dir, key)
	// Write through a temp file so a crash never leaves a half-written key.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to commit %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store, for tests.
type MemStore map[string][]byte

func (s MemStore) Get(key string) ([]byte, bool, error) {
	value, found := s[key]
	return value, found, nil
}

func (s MemStore) Set(key string, value []byte) error {
	s[key] = value
	return nil
}

// Load reads the whole business state from a store. Keys that were never
// written read back as empty: a fresh store loads as an empty ledger.
func Load(s Store) (*Ledger, error) {
	ledger := NewLedger()

	if data, found, err := s.Get(KeyTransactions); err != nil {
		return nil, err
	} else if found {
		txs, err := DecodeTransactions(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode transactions: %w", err)
		}
		ledger.transactions = txs
	}

	if data, found, err := s.Get(KeyWarehouse); err != nil {
		return nil, err
	} else if found {
		inv, err := DecodeInventory(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode warehouse: %w", err)
		}
		ledger.inventory = inv
	}

	if data, found, err := s.Get(KeySuppliers); err != nil {
		return nil, err
	} else if found {
		reg, err := DecodeContacts(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode suppliers: %w", err)
		}
		ledger.suppliers = reg
	}

	if data, found, err := s.Get(KeyCustomers); err != nil {
		return nil, err
	} else if found {
		reg, err := DecodeContacts(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode customers: %w", err)
		}
		ledger.customers = reg
	}

	return ledger, nil
}

// Save writes the whole business state back to a store. All four keys are
// written, so the store always holds a consistent snapshot.
func Save(s Store, ledger *Ledger) error {
	var txBuf bytes.Buffer
	if err := EncodeTransactions(&txBuf, ledger); err != nil {
		return err
	}
	var invBuf bytes.Buffer
	if err := EncodeInventory(&invBuf, ledger.inventory); err != nil {
		return err
	}
	var supBuf bytes.Buffer
	if err := EncodeContacts(&supBuf, ledger.suppliers); err != nil {
		return err
	}
	var cusBuf bytes.Buffer
	if err := EncodeContacts(&cusBuf, ledger.customers); err != nil {
		return err
	}

	if err := s.Set(KeyTransactions, txBuf.Bytes()); err != nil {
		return err
	}
	if err := s.Set(KeyWarehouse, invBuf.Bytes()); err != nil {
		return err
	}
	if err := s.Set(KeySuppliers, supBuf.Bytes()); err != nil {
		return err
	}
	return s.Set(KeyCustomers, cusBuf.Bytes())
}
