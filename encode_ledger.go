package fruitbook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeTransactions decodes transactions from a stream of JSONL data, one
// transaction per line, and returns them in file order.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Command CommandType `json:"type"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify transaction type in line %q: %w", string(lineBytes), err)
		}

		var decodedTx Transaction
		switch identifier.Command {
		case CmdPurchase:
			var tx Purchase
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, err
			}
			decodedTx = tx
		case CmdSale:
			var tx Sale
			if err := json.Unmarshal(lineBytes, &tx); err != nil {
				return nil, err
			}
			decodedTx = tx
		default:
			return nil, fmt.Errorf("unknown transaction type: %q", identifier.Command)
		}
		txs = append(txs, decodedTx)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeTransactions persists a ledger's transactions to an io.Writer in
// JSONL format, in chronological order.
func EncodeTransactions(w io.Writer, ledger *Ledger) error {
	for _, tx := range ledger.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// decodeOrderedObject reads a single JSON object and visits its members in
// file order. encoding/json maps would lose that order.
func decodeOrderedObject(r io.Reader, visit func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", keyTok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("failed to decode value for key %q: %w", key, err)
		}
		if err := visit(key, raw); err != nil {
			return err
		}
	}

	_, err = dec.Token() // consume the closing brace
	return err
}

// EncodeInventory persists the warehouse as a JSON object keyed by product
// name, keeping the insertion order of the products.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	var obj jsonObjectWriter
	for e := range inv.Entries() {
		obj.Append(e.ProductName, e)
	}
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal warehouse: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeInventory reads the warehouse back, preserving the product order of
// the stored object.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := newInventory()
	err := decodeOrderedObject(r, func(key string, raw json.RawMessage) error {
		e := &InventoryEntry{ProductName: key}
		if err := json.Unmarshal(raw, e); err != nil {
			return fmt.Errorf("failed to decode warehouse entry %q: %w", key, err)
		}
		inv.put(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inv, nil
}

// EncodeContacts persists a contact registry as a JSON object keyed by party
// name, keeping the order parties first traded.
func EncodeContacts(w io.Writer, reg *ContactRegistry) error {
	var obj jsonObjectWriter
	for r := range reg.Contacts() {
		obj.Append(r.Name, r)
	}
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal contacts: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// DecodeContacts reads a contact registry back, preserving the party order
// of the stored object.
func DecodeContacts(r io.Reader) (*ContactRegistry, error) {
	reg := newContactRegistry()
	err := decodeOrderedObject(r, func(key string, raw json.RawMessage) error {
		rec := &ContactRecord{Name: key}
		if err := json.Unmarshal(raw, rec); err != nil {
			return fmt.Errorf("failed to decode contact %q: %w", key, err)
		}
		reg.put(rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}
