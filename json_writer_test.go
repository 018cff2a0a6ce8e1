package fruitbook

import "testing"

func TestJSONObjectWriterKeepsFieldOrder(t *testing.T) {
	// The store files keep the field order of the original data, which a
	// plain map-backed marshal would not.
	var w jsonObjectWriter
	w.Append("quantity", 100)
	w.Append("price", 5000)
	w.Append("total", 500000)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"quantity":100,"price":5000,"total":500000}`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "{}"; string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONObjectWriterOptional(t *testing.T) {
	// A trade with no phone must not store an empty phone field, but a zero
	// amount is still a real value.
	var w jsonObjectWriter
	w.Append("supplier", "Karimov aka")
	w.Optional("supplierPhone", "")
	w.Optional("vehicleNumber", "01A123BC")
	w.Append("profit", 0)
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"supplier":"Karimov aka","vehicleNumber":"01A123BC","profit":0}`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestJSONObjectWriterEmbedFrom(t *testing.T) {
	// The fields common to both trade kinds come first, the variant fields
	// after, the way Purchase and Sale marshal around baseTx.
	common := struct {
		Id      int64  `json:"id"`
		Command string `json:"type"`
	}{Id: 1767949200000, Command: "purchase"}

	var w jsonObjectWriter
	w.EmbedFrom(common)
	w.Append("supplier", "Rustam aka")
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"id":1767949200000,"type":"purchase","supplier":"Rustam aka"}`
	if string(got) != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
