package tracker

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BaseCurrency is the single canonical denomination in which all
// amounts are persisted, independent of the display currency.
const BaseCurrency = "USD"

// Currencies is the fixed set of supported display currencies.
var Currencies = []string{"USD", "EUR", "GBP", "RWF"}

// DefaultRates returns the built-in exchange rate table, expressing
// "1 base unit = rate × currency".
func DefaultRates() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.NewFromFloat(0.94),
		"GBP": decimal.NewFromFloat(0.81),
		"RWF": decimal.NewFromInt(1325),
	}
}

// Settings is the single record of user preferences. Reads always yield
// a fully-populated record: persisted partial data is merged over these
// defaults, so the schema can grow without invalidating old blobs.
type Settings struct {
	UserName      string
	DarkMode      bool
	Currency      string
	MonthlyBudget decimal.Decimal // base currency units
	ExchangeRates map[string]decimal.Decimal
}

// DefaultSettings returns the record a fresh install starts from.
func DefaultSettings() Settings {
	return Settings{
		UserName:      "Student",
		DarkMode:      false,
		Currency:      BaseCurrency,
		MonthlyBudget: decimal.NewFromInt(600),
		ExchangeRates: DefaultRates(),
	}
}

// MarshalJSON implements the json.Marshaler interface for Settings with
// a stable field order.
func (s Settings) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("userName", s.UserName)
	w.Append("darkMode", s.DarkMode)
	w.Append("currency", s.Currency)
	w.Append("monthlyBudget", s.MonthlyBudget)
	w.Append("exchangeRates", s.ExchangeRates)
	return w.MarshalJSON()
}

// UnmarshalJSON accepts partial records: missing fields are left at
// their zero value and resolved against defaults by the store.
func (s *Settings) UnmarshalJSON(data []byte) error {
	var p SettingsPatch
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = p.apply(DefaultSettings())
	return nil
}

// SettingsPatch is a partial settings record: nil fields are left
// unchanged on save. ExchangeRates is merged key-by-key, never replaced
// wholesale, so a partial rates table cannot drop default currencies.
type SettingsPatch struct {
	UserName      *string                    `json:"userName"`
	DarkMode      *bool                      `json:"darkMode"`
	Currency      *string                    `json:"currency"`
	MonthlyBudget *decimal.Decimal           `json:"monthlyBudget"`
	ExchangeRates map[string]decimal.Decimal `json:"exchangeRates"`
}

// apply merges the patch over a settings record and returns the result.
// The rates map is copied, the input record is never aliased.
func (p SettingsPatch) apply(s Settings) Settings {
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.MonthlyBudget != nil {
		s.MonthlyBudget = *p.MonthlyBudget
	}
	rates := make(map[string]decimal.Decimal, len(s.ExchangeRates))
	for code, rate := range s.ExchangeRates {
		rates[code] = rate
	}
	for code, rate := range p.ExchangeRates {
		rates[code] = rate
	}
	s.ExchangeRates = rates
	return s
}

// SettingsStore reads and writes the persisted settings record.
type SettingsStore struct {
	store Store
}

// NewSettingsStore creates a store over the given substrate.
func NewSettingsStore(s Store) *SettingsStore {
	return &SettingsStore{store: s}
}

// Get returns the fully-populated settings. It never fails: absent or
// unreadable storage is equivalent to an empty override of the defaults.
func (s *SettingsStore) Get() Settings {
	raw, ok := s.store.Read(keySettings)
	if !ok {
		return DefaultSettings()
	}
	var p SettingsPatch
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return DefaultSettings()
	}
	return p.apply(DefaultSettings())
}

// Save merges the patch over the current (merged) settings and persists
// the result as the new authoritative record.
func (s *SettingsStore) Save(p SettingsPatch) error {
	merged := p.apply(s.Get())
	data, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	return s.store.Write(keySettings, string(data))
}
