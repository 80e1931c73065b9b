package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pc(ts string, price string) PointsCurrency {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return PointsCurrency{Timestamp: t, Price: decimal.RequireFromString(price), Currency: "EUR"}
}

func TestNewSeries_SortsAndDeduplicates(t *testing.T) {
	s := NewSeries("DE", GranularityHourly, []PointsCurrency{
		pc("2022-01-01T02:00:00Z", "3"),
		pc("2022-01-01T00:00:00Z", "1"),
		pc("2022-01-01T01:00:00Z", "2"),
		pc("2022-01-01T00:00:00Z", "9"),
	})

	require.Len(t, s.Points, 3)
	assert.Equal(t, "1", s.Points[0].Price.String())
	assert.Equal(t, "2", s.Points[1].Price.String())
	assert.Equal(t, "3", s.Points[2].Price.String())
	assert.Equal(t, "DE", s.Country)
	assert.Equal(t, GranularityHourly, s.Granularity)
}

func TestClip_InclusiveExclusive(t *testing.T) {
	start, _ := ParseDate("2022-01-01")
	end, _ := ParseDate("2022-01-02")
	pts := []PointsCurrency{
		pc("2021-12-31T23:00:00Z", "1"),
		pc("2022-01-01T00:00:00Z", "2"),
		pc("2022-01-01T23:00:00Z", "3"),
		pc("2022-01-02T00:00:00Z", "4"),
	}

	got := Clip(pts, start, end)

	require.Len(t, got, 2)
	assert.True(t, got[0].Timestamp.Equal(start))
	assert.Equal(t, "3", got[1].Price.String())
}

func TestResample(t *testing.T) {
	quarters := []PointsCurrency{
		pc("2024-01-01T00:00:00Z", "10"),
		pc("2024-01-01T00:15:00Z", "20"),
		pc("2024-01-01T00:30:00Z", "30"),
		pc("2024-01-01T00:45:00Z", "40"),
		pc("2024-01-01T01:00:00Z", "50"),
	}

	t.Run("hourly averages quarter hours", func(t *testing.T) {
		got := Resample(quarters, GranularityHourly)
		require.Len(t, got, 2)
		assert.Equal(t, "25", got[0].Price.String())
		assert.Equal(t, "50", got[1].Price.String())
		assert.Equal(t, time.Hour, got[1].Timestamp.Sub(got[0].Timestamp))
		assert.Equal(t, "EUR", got[0].Currency)
	})

	t.Run("daily buckets are one day apart", func(t *testing.T) {
		var pts []PointsCurrency
		start, _ := ParseDate("2024-03-30")
		for h := 0; h < 72; h++ {
			pts = append(pts, PointsCurrency{
				Timestamp: start.Add(time.Duration(h) * time.Hour),
				Price:     decimal.NewFromInt(int64(h % 24)),
			})
		}
		got := Resample(pts, GranularityDaily)
		require.Len(t, got, 3)
		for i := 1; i < len(got); i++ {
			assert.Equal(t, 24*time.Hour, got[i].Timestamp.Sub(got[i-1].Timestamp))
		}
		assert.Equal(t, "11.5", got[0].Price.String())
	})

	t.Run("unsorted input yields sorted output", func(t *testing.T) {
		got := Resample([]PointsCurrency{
			pc("2024-01-01T05:00:00Z", "5"),
			pc("2024-01-01T01:00:00Z", "1"),
		}, GranularityHourly)
		require.Len(t, got, 2)
		assert.True(t, got[0].Timestamp.Before(got[1].Timestamp))
	})
}

func TestParseEnums(t *testing.T) {
	g, err := ParseGranularity("daily")
	require.NoError(t, err)
	assert.Equal(t, GranularityDaily, g)

	_, err = ParseGranularity("MONTHLY")
	assert.ErrorIs(t, err, ErrInvalidEnum)
	assert.Contains(t, err.Error(), "granularity")

	p, err := ParseProviderName("Energy_Charts")
	require.NoError(t, err)
	assert.Equal(t, ProviderEnergyCharts, p)

	_, err = ParseCommodity("OIL")
	assert.ErrorIs(t, err, ErrInvalidEnum)

	m, err := ParseModel("high")
	require.NoError(t, err)
	assert.Equal(t, ModelHigh, m)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2022-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("01/01/2022")
	assert.ErrorIs(t, err, ErrInvalidDate)

	now := time.Date(2024, 5, 6, 23, 59, 0, 0, time.FixedZone("X", -2*3600))
	assert.Equal(t, time.Date(2024, 5, 7, 0, 0, 0, 0, time.UTC), Today(now))
}
