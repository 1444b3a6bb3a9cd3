package pricing

import (
	"testing"
)

func TestParseCurrencyCoded(t *testing.T) {
	p := Parse("JOD 09.00")
	if p == nil {
		t.Fatal("expected a price, got nil")
	}
	if p.Amount != 9 || p.Currency != "JOD" {
		t.Fatalf("expected {9 JOD}, got %+v", p)
	}
	if p.USD() != 12.69 {
		t.Fatalf("expected 12.69 USD, got %v", p.USD())
	}
}

func TestParseChildSegmentIgnored(t *testing.T) {
	p := Parse("USD 22.00 - CHD 15.00")
	if p == nil {
		t.Fatal("expected a price, got nil")
	}
	if p.Amount != 22 || p.Currency != "USD" {
		t.Fatalf("expected {22 USD}, got %+v", p)
	}
}

func TestParseAlternateSegmentIgnored(t *testing.T) {
	p := Parse("JOD 45.00 / USD 63.00")
	if p == nil {
		t.Fatal("expected a price, got nil")
	}
	if p.Amount != 45 || p.Currency != "JOD" {
		t.Fatalf("expected {45 JOD}, got %+v", p)
	}
}

func TestParseBareNumberDefaultsToJOD(t *testing.T) {
	p := Parse("approx 12.50 per person")
	if p == nil {
		t.Fatal("expected a price, got nil")
	}
	if p.Amount != 12.5 || p.Currency != "JOD" {
		t.Fatalf("expected {12.5 JOD}, got %+v", p)
	}
}

func TestParseNoNumberReturnsNil(t *testing.T) {
	if p := Parse("free of charge"); p != nil {
		t.Fatalf("expected nil, got %+v", p)
	}
	if p := Parse(""); p != nil {
		t.Fatalf("expected nil for empty string, got %+v", p)
	}
}

func TestParseZeroIsAPrice(t *testing.T) {
	p := Parse("JOD 0.00")
	if p == nil {
		t.Fatal("zero is a valid price, got nil")
	}
	if p.Amount != 0 {
		t.Fatalf("expected 0, got %v", p.Amount)
	}
}

func TestParseLowercaseCode(t *testing.T) {
	p := Parse("usd 10")
	if p == nil || p.Currency != "USD" || p.Amount != 10 {
		t.Fatalf("expected {10 USD}, got %+v", p)
	}
}

func TestToUSD(t *testing.T) {
	if got := ToUSD(22, "USD"); got != 22 {
		t.Fatalf("expected 22, got %v", got)
	}
	if got := ToUSD(9, "JOD"); got != 12.69 {
		t.Fatalf("expected 12.69, got %v", got)
	}
}

func TestMoneyNilPrice(t *testing.T) {
	var p *Price
	if p.Money() != nil {
		t.Fatal("nil price should produce nil money")
	}
}
