package provider

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Supports(country string) bool {
	args := m.Called(country)
	return args.Bool(0)
}

func (m *MockProvider) DayAheadPrices(ctx context.Context, country string, start, end time.Time) (*DayAheadPrices, error) {
	args := m.Called(ctx, country, start, end)
	res, _ := args.Get(0).(*DayAheadPrices)
	return res, args.Error(1)
}
