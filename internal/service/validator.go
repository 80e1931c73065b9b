package service

import (
	"errors"
	"strings"
)

// supportedCountries lists the countries and bidding zones the service serves.
var supportedCountries = map[string]struct{}{
	"AT":      {},
	"BE":      {},
	"CH":      {},
	"CZ":      {},
	"DE":      {},
	"DK1":     {},
	"DK2":     {},
	"ES":      {},
	"FR":      {},
	"HU":      {},
	"IT-NORD": {},
	"NL":      {},
	"NO2":     {},
	"PL":      {},
	"SE3":     {},
	"SI":      {},
}

// ErrUnsupportedCountry is returned when a country is not in the supported list.
var ErrUnsupportedCountry = errors.New("unsupported country")

// Validator defines the interface for country validation.
type Validator interface {
	Validate(country string) error
	IsSupported(country string) bool
}

type validator struct{}

// NewValidator creates a new country validator.
func NewValidator() Validator {
	return &validator{}
}

// Validate checks if the country is supported (case-insensitive).
func (v *validator) Validate(country string) error {
	if v.IsSupported(country) {
		return nil
	}
	return ErrUnsupportedCountry
}

// IsSupported returns true if the country is supported (case-insensitive).
func (v *validator) IsSupported(country string) bool {
	_, ok := supportedCountries[strings.ToUpper(strings.TrimSpace(country))]
	return ok
}
