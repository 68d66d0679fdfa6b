package tracker

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "result": "success",
	    "base_code": "USD",
	    "rates": {
	        "USD": 1,
	        "EUR": 0.9432,
	        "GBP": 0.8123,
	        "RWF": 1318.5
	    }
	}
*/

// ratesURL serves current USD-base exchange rates as a JSON document.
const ratesURL = "https://open.er-api.com/v6/latest/USD"

// FetchRates downloads the current exchange rates for the supported
// currency set, keyed to the base currency. Codes missing from the
// provider's answer are simply absent from the result, which is fine:
// rates are merged key-by-key into settings, never replaced wholesale.
// A nil client uses the daily-cached one.
func FetchRates(client *http.Client) (map[string]decimal.Decimal, error) {
	return fetchRates(client, ratesURL)
}

func fetchRates(client *http.Client, addr string) (map[string]decimal.Decimal, error) {
	if client == nil {
		client = daily()
	}

	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error fetching exchange rates: %w", err)
	}

	rates := make(map[string]decimal.Decimal)
	for _, code := range Currencies {
		jval, err := jsonpath.Get("$.rates."+code, jobj)
		if err != nil {
			continue // the provider does not quote this code today
		}
		val, ok := jval.(float64)
		if !ok || val <= 0 {
			continue
		}
		rates[code] = decimal.NewFromFloat(val)
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("no usable rates in answer from %s", addr)
	}
	// The base rate is 1 by convention, whatever the provider says.
	rates[BaseCurrency] = decimal.NewFromInt(1)
	return rates, nil
}
