package fruitbook

import (
	"encoding/json"
	"time"
)

// CommandType is a typed string for identifying transaction commands.
type CommandType string

// Command types used for identifying transactions.
const (
	CmdPurchase CommandType = "purchase"
	CmdSale     CommandType = "sale"
)

// Transaction defines the common interface for the two kinds of trades
// that can be recorded in the ledger.
type Transaction interface {
	What() CommandType // What returns the command type of the transaction ("purchase" or "sale").
	When() time.Time   // When returns the timestamp at which the transaction was recorded.
	ID() int64         // ID returns the unique, strictly increasing identifier of the transaction.
	Product() string   // Product returns the name of the fruit traded.
	Equal(Transaction) bool
	Validate(ledger *Ledger) (Transaction, error)
}

// isoTimestamp is the wire format for transaction timestamps, millisecond
// precision in UTC.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

type baseTx struct {
	Id          int64       `json:"id"`          // Id is the unique transaction identifier, derived from its timestamp.
	Command     CommandType `json:"type"`        // Command specifies the kind of trade ("purchase" or "sale").
	ProductName string      `json:"productName"` // ProductName is the fruit being traded.
	Quantity    Quantity    `json:"quantity"`    // Quantity is the weight traded, in kilograms.
	Price       Money       `json:"price"`       // Price is the unit price per kilogram.
	Total       Money       `json:"total"`       // Total is the full value of the trade (quantity times price).
	Date        time.Time   `json:"date"`        // Date is the timestamp at which the trade was recorded.
}

// What returns the command name for the transaction, which is used to identify the type of transaction.
func (t baseTx) What() CommandType {
	return t.Command
}

// When returns the timestamp of the transaction.
func (t baseTx) When() time.Time {
	return t.Date
}

// ID returns the unique identifier of the transaction.
func (t baseTx) ID() int64 {
	return t.Id
}

// Product returns the name of the fruit traded.
func (t baseTx) Product() string {
	return t.ProductName
}

// MarshalJSON implements the json.Marshaler interface for baseTx.
// The date field is deliberately left out so that concrete transactions can
// append it last, after their own fields.
func (t baseTx) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.Id)
	w.Append("type", t.Command)
	w.Append("productName", t.ProductName)
	w.Append("quantity", t.Quantity)
	w.Append("price", t.Price)
	w.Append("total", t.Total)
	return w.MarshalJSON()
}

// equal reports whether two base transactions carry the same values.
// Money and Quantity are compared semantically, not structurally.
func (t baseTx) equal(o baseTx) bool {
	return t.Id == o.Id &&
		t.Command == o.Command &&
		t.ProductName == o.ProductName &&
		t.Quantity.Equal(o.Quantity) &&
		t.Price.Equal(o.Price) &&
		t.Total.Equal(o.Total) &&
		t.Date.Equal(o.Date)
}

// Validate checks the fields common to every transaction. It also quick-fixes
// a zero total by computing it from quantity and price.
func (t *baseTx) Validate() error {
	if t.ProductName == "" {
		return newValidationError("productName", "must not be empty")
	}
	if !t.Quantity.IsPositive() {
		return newValidationError("quantity", "must be strictly positive")
	}
	if !t.Price.IsPositive() {
		return newValidationError("price", "must be strictly positive")
	}
	if t.Total.IsZero() {
		t.Total = t.Price.Mul(t.Quantity)
	}
	return nil
}

// Purchase represents an incoming trade: fruit bought from a supplier and
// added to the warehouse.
type Purchase struct {
	baseTx
	Supplier      string `json:"supplier"`                // Supplier is the name of the supplier the fruit was bought from.
	SupplierPhone string `json:"supplierPhone,omitempty"` // SupplierPhone is the supplier's contact number.
	VehicleNumber string `json:"vehicleNumber,omitempty"` // VehicleNumber is the plate of the vehicle that delivered the fruit.
}

// NewPurchase creates a new Purchase transaction. The total is computed from
// quantity and price; the id and date are assigned when the transaction is
// recorded in a ledger.
func NewPurchase(product string, quantity Quantity, price Money, supplier, phone, vehicle string) Purchase {
	return Purchase{
		baseTx: baseTx{
			Command:     CmdPurchase,
			ProductName: product,
			Quantity:    quantity,
			Price:       price,
			Total:       price.Mul(quantity),
		},
		Supplier:      supplier,
		SupplierPhone: phone,
		VehicleNumber: vehicle,
	}
}

// MarshalJSON implements the json.Marshaler interface for Purchase.
func (t Purchase) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Append("supplier", t.Supplier)
	w.Optional("supplierPhone", t.SupplierPhone)
	w.Optional("vehicleNumber", t.VehicleNumber)
	w.Append("date", t.Date.UTC().Format(isoTimestamp))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Purchase.
func (t *Purchase) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Supplier      string `json:"supplier"`
		SupplierPhone string `json:"supplierPhone"`
		VehicleNumber string `json:"vehicleNumber"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Supplier = temp.Supplier
	t.SupplierPhone = temp.SupplierPhone
	t.VehicleNumber = temp.VehicleNumber
	return nil
}

func (t Purchase) Equal(other Transaction) bool {
	o, ok := other.(Purchase)
	return ok && t.baseTx.equal(o.baseTx) &&
		t.Supplier == o.Supplier &&
		t.SupplierPhone == o.SupplierPhone &&
		t.VehicleNumber == o.VehicleNumber
}

// Validate checks the Purchase transaction's fields. A purchase never
// inspects the warehouse: any product, known or new, can be bought.
func (t Purchase) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	if t.Supplier == "" {
		return t, newValidationError("supplier", "must not be empty")
	}
	return t, nil
}

// Sale represents an outgoing trade: fruit sold to a customer and removed
// from the warehouse. The cost of goods sold and the resulting profit are
// captured at recording time, so later trades cannot change them.
type Sale struct {
	baseTx
	Cost            Money  // Cost is the weighted average acquisition cost of the quantity sold.
	Profit          Money  // Profit is the sale total minus the cost.
	Customer        string `json:"customer"`                  // Customer is the name of the buyer.
	CustomerPhone   string `json:"customerPhone,omitempty"`   // CustomerPhone is the buyer's contact number.
	DeliveryVehicle string `json:"deliveryVehicle,omitempty"` // DeliveryVehicle is the plate of the vehicle delivering the order.
}

// NewSale creates a new Sale transaction. Cost and profit are resolved
// against the warehouse during validation.
func NewSale(product string, quantity Quantity, price Money, customer, phone, vehicle string) Sale {
	return Sale{
		baseTx: baseTx{
			Command:     CmdSale,
			ProductName: product,
			Quantity:    quantity,
			Price:       price,
			Total:       price.Mul(quantity),
		},
		Customer:        customer,
		CustomerPhone:   phone,
		DeliveryVehicle: vehicle,
	}
}

// MarshalJSON implements the json.Marshaler interface for Sale.
func (t Sale) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(t.baseTx)
	w.Append("cost", t.Cost)
	w.Append("profit", t.Profit)
	w.Append("customer", t.Customer)
	w.Optional("customerPhone", t.CustomerPhone)
	w.Optional("deliveryVehicle", t.DeliveryVehicle)
	w.Append("date", t.Date.UTC().Format(isoTimestamp))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Sale.
func (t *Sale) UnmarshalJSON(data []byte) error {
	var temp struct {
		baseTx
		Cost            Money  `json:"cost"`
		Profit          Money  `json:"profit"`
		Customer        string `json:"customer"`
		CustomerPhone   string `json:"customerPhone"`
		DeliveryVehicle string `json:"deliveryVehicle"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.baseTx = temp.baseTx
	t.Cost = temp.Cost
	t.Profit = temp.Profit
	t.Customer = temp.Customer
	t.CustomerPhone = temp.CustomerPhone
	t.DeliveryVehicle = temp.DeliveryVehicle
	return nil
}

func (t Sale) Equal(other Transaction) bool {
	o, ok := other.(Sale)
	return ok && t.baseTx.equal(o.baseTx) &&
		t.Cost.Equal(o.Cost) &&
		t.Profit.Equal(o.Profit) &&
		t.Customer == o.Customer &&
		t.CustomerPhone == o.CustomerPhone &&
		t.DeliveryVehicle == o.DeliveryVehicle
}

// Validate checks the Sale transaction's fields. It verifies the warehouse
// holds enough stock of the product and resolves the cost of goods sold from
// the current weighted average cost. No state is modified here, so a failed
// sale leaves the ledger untouched.
func (t Sale) Validate(ledger *Ledger) (Transaction, error) {
	if err := t.baseTx.Validate(); err != nil {
		return t, err
	}
	if t.Customer == "" {
		return t, newValidationError("customer", "must not be empty")
	}

	available := ledger.AvailableQuantity(t.ProductName)
	if available.LessThan(t.Quantity) {
		return t, &InsufficientStockError{
			Product:   t.ProductName,
			Requested: t.Quantity,
			Available: available,
		}
	}

	t.Cost = ledger.AverageCost(t.ProductName).Mul(t.Quantity)
	t.Profit = t.Total.Sub(t.Cost)
	return t, nil
}
