package fruitbook

import (
	"encoding/json"
	"iter"
	"time"
)

// ContactRecord is a single supplier or customer as last seen by the
// business: the name, the latest phone number, and when the party last
// traded.
type ContactRecord struct {
	Name            string
	Phone           string
	LastTransaction time.Time
}

// MarshalJSON implements the json.Marshaler interface for ContactRecord.
// The name is the key of the enclosing object and is not repeated here.
func (r ContactRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("phone", r.Phone)
	w.Append("lastTransaction", r.LastTransaction.UTC().Format(isoTimestamp))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for ContactRecord.
func (r *ContactRecord) UnmarshalJSON(data []byte) error {
	var temp struct {
		Phone           string    `json:"phone"`
		LastTransaction time.Time `json:"lastTransaction"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	r.Phone = temp.Phone
	r.LastTransaction = temp.LastTransaction
	return nil
}

// ContactRegistry keeps one record per party name, in the order parties
// first traded. Recording a trade for a known name overwrites the whole
// record, so the registry always reflects the most recent details.
type ContactRegistry struct {
	records map[string]*ContactRecord
	order   []string
}

func newContactRegistry() *ContactRegistry {
	return &ContactRegistry{records: make(map[string]*ContactRecord)}
}

// record upserts a contact. A known name keeps its place in the insertion
// order; its phone and last transaction time are replaced, even by an empty
// phone.
func (reg *ContactRegistry) record(name, phone string, when time.Time) {
	if r, exists := reg.records[name]; exists {
		r.Phone = phone
		r.LastTransaction = when
		return
	}
	reg.records[name] = &ContactRecord{Name: name, Phone: phone, LastTransaction: when}
	reg.order = append(reg.order, name)
}

// put registers a decoded record under its name, appending to the insertion order.
func (reg *ContactRegistry) put(r *ContactRecord) {
	if _, exists := reg.records[r.Name]; !exists {
		reg.order = append(reg.order, r.Name)
	}
	reg.records[r.Name] = r
}

// Get returns the record for a name, or nil if the party never traded.
func (reg *ContactRegistry) Get(name string) *ContactRecord {
	return reg.records[name]
}

// Contacts returns an iterator over the records, in the order parties first traded.
func (reg *ContactRegistry) Contacts() iter.Seq[*ContactRecord] {
	return func(yield func(*ContactRecord) bool) {
		for _, name := range reg.order {
			if !yield(reg.records[name]) {
				return
			}
		}
	}
}

// Len returns the number of distinct parties in the registry.
func (reg *ContactRegistry) Len() int {
	return len(reg.order)
}
