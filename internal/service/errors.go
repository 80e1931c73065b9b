package service

import "errors"

// ErrInvalidRange indicates that start is not before end.
var ErrInvalidRange = errors.New("start must be before end")

// ErrRangeTooLarge indicates a requested range above the configured limit.
var ErrRangeTooLarge = errors.New("requested range is too large")

// ErrInvalidGranularity indicates a granularity the use-case does not serve.
var ErrInvalidGranularity = errors.New("granularity not available for this series")

// ErrUnsupportedProvider indicates an unknown provider or one that does not cover the country.
var ErrUnsupportedProvider = errors.New("provider does not serve this country")

// ErrProviderUnavailable indicates that no provider could deliver prices.
var ErrProviderUnavailable = errors.New("price provider unavailable")

// ErrInvalidImport indicates an import payload that cannot be stored.
var ErrInvalidImport = errors.New("invalid import")

// ErrNotFound indicates the requested resource was not found.
var ErrNotFound = errors.New("not found")

// ErrNotImplemented indicates a use-case that is not available in this deployment.
var ErrNotImplemented = errors.New("not implemented")

// ErrInternal indicates an internal server error.
var ErrInternal = errors.New("internal error")
