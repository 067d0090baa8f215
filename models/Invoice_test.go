package models

import (
	"encoding/json"
	"testing"

	"gorm.io/datatypes"
)

func TestSumLines(t *testing.T) {
	lines := []InvoiceLine{
		{Description: "Chambre 12, 3 nuits", Quantity: 3, UnitAmount: 8900},
		{Description: "Petit déjeuner", Quantity: 2, UnitAmount: 1200},
	}

	if got := SumLines(lines); got != 3*8900+2*1200 {
		t.Errorf("SumLines = %d, want %d", got, 3*8900+2*1200)
	}
	if got := SumLines(nil); got != 0 {
		t.Errorf("SumLines(nil) = %d, want 0", got)
	}
}

func TestInvoiceLineItemsRoundTrip(t *testing.T) {
	lines := []InvoiceLine{{Description: "Navette aéroport", Quantity: 1, UnitAmount: 2500}}
	raw, err := json.Marshal(lines)
	if err != nil {
		t.Fatal(err)
	}

	invoice := Invoice{Lines: datatypes.JSON(raw)}
	decoded, err := invoice.LineItems()
	if err != nil {
		t.Fatalf("LineItems: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Total() != 2500 {
		t.Errorf("decoded %+v, want the original line back", decoded)
	}

	empty := Invoice{}
	decoded, err = empty.LineItems()
	if err != nil || decoded != nil {
		t.Errorf("empty invoice: got (%v, %v), want (nil, nil)", decoded, err)
	}
}
