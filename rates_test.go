package tracker

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFetchRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"result": "success",
			"base_code": "USD",
			"rates": {
				"USD": 1.0,
				"EUR": 0.9432,
				"GBP": 0.8123,
				"RWF": 1318.5,
				"JPY": 155.2
			}
		}`))
	}))
	defer server.Close()

	rates, err := fetchRates(server.Client(), server.URL)
	if err != nil {
		t.Fatalf("fetchRates: %v", err)
	}

	if !rates["EUR"].Equal(decimal.NewFromFloat(0.9432)) {
		t.Errorf("EUR = %s, want 0.9432", rates["EUR"])
	}
	if !rates["RWF"].Equal(decimal.NewFromFloat(1318.5)) {
		t.Errorf("RWF = %s, want 1318.5", rates["RWF"])
	}
	// Only the supported set is fetched.
	if _, ok := rates["JPY"]; ok {
		t.Error("fetched a rate for an unsupported currency")
	}
	// The base rate is 1 whatever the provider says.
	if !rates["USD"].Equal(decimal.NewFromInt(1)) {
		t.Errorf("USD = %s, want 1", rates["USD"])
	}
}

func TestFetchRatesPartialAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates": {"EUR": 0.95, "GBP": -1, "RWF": "oops"}}`))
	}))
	defer server.Close()

	rates, err := fetchRates(server.Client(), server.URL)
	if err != nil {
		t.Fatalf("fetchRates: %v", err)
	}
	if !rates["EUR"].Equal(decimal.NewFromFloat(0.95)) {
		t.Errorf("EUR = %s, want 0.95", rates["EUR"])
	}
	// Non-positive and malformed quotes are skipped, not errors.
	if _, ok := rates["GBP"]; ok {
		t.Error("kept a non-positive rate")
	}
	if _, ok := rates["RWF"]; ok {
		t.Error("kept a malformed rate")
	}
}

func TestFetchRatesUnusableAnswer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "quota exceeded"}`))
	}))
	defer server.Close()

	if _, err := fetchRates(server.Client(), server.URL); err == nil {
		t.Fatal("fetchRates accepted an answer with no rates")
	}
}
