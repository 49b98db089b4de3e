package s1_universe

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/pumpwatch/internal/contracts"
)

func stock(symbol string, volume int64, price float64, dollarVolume float64) contracts.CoarseStock {
	return contracts.CoarseStock{
		Symbol:             symbol,
		HasFundamentalData: true,
		Volume:             volume,
		Price:              price,
		DollarVolume:       dollarVolume,
	}
}

func TestNewSelector_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero max symbols", func(c *Config) { c.MaxSymbols = 0 }},
		{"negative min volume", func(c *Config) { c.MinVolume = -1 }},
		{"inverted volume band", func(c *Config) { c.MinVolume = 5000000 }},
		{"negative min price", func(c *Config) { c.MinPrice = -0.5 }},
		{"inverted price band", func(c *Config) { c.MinPrice = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(&config)

			selector, err := NewSelector(config)
			assert.Error(t, err)
			assert.Nil(t, selector)
		})
	}

	selector, err := NewSelector(DefaultConfig())
	require.NoError(t, err)
	require.NotNil(t, selector)
}

func TestSelector_Filters(t *testing.T) {
	selector, err := NewSelector(DefaultConfig())
	require.NoError(t, err)

	noFundamentals := stock("NOFD", 50000, 2.50, 125000)
	noFundamentals.HasFundamentalData = false

	candidates := []contracts.CoarseStock{
		stock("GOOD", 50000, 2.50, 125000),
		noFundamentals,
		stock("LOWV", 10000, 2.50, 25000),    // volume == min bound, excluded
		stock("HIGV", 1000000, 2.50, 2500000), // volume == max bound, excluded
		stock("ZERO", 50000, 0, 0),            // price == min bound, excluded
		stock("HIGP", 50000, 5.00, 250000),    // price == max bound, excluded
		stock("EDGE", 10001, 4.99, 49904.99),  // just inside both bands
	}

	symbols := selector.Select(3, candidates)
	assert.Equal(t, []string{"GOOD", "EDGE"}, symbols)

	snapshot := selector.Snapshot(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, snapshot.Month)
	assert.Equal(t, 2, snapshot.TotalCount)

	excluded, reason := snapshot.IsExcluded("NOFD")
	assert.True(t, excluded)
	assert.Equal(t, "no fundamental data", reason)

	for _, sym := range []string{"LOWV", "HIGV", "ZERO", "HIGP"} {
		excluded, _ := snapshot.IsExcluded(sym)
		assert.True(t, excluded, "expected %s to be excluded", sym)
	}
}

func TestSelector_MonthlyCache(t *testing.T) {
	selector, err := NewSelector(DefaultConfig())
	require.NoError(t, err)

	march := []contracts.CoarseStock{
		stock("AAAA", 50000, 2.50, 125000),
		stock("BBBB", 60000, 3.00, 180000),
	}
	april := []contracts.CoarseStock{
		stock("CCCC", 70000, 1.50, 105000),
	}

	first := selector.Select(3, march)
	assert.Equal(t, []string{"BBBB", "AAAA"}, first)

	// Same month: candidates are ignored, cached list returned
	cached := selector.Select(3, april)
	assert.Equal(t, first, cached)

	// Month change triggers a refresh
	refreshed := selector.Select(4, april)
	assert.Equal(t, []string{"CCCC"}, refreshed)

	// Empty candidates on a new month yields an empty universe
	empty := selector.Select(5, nil)
	assert.Empty(t, empty)
}

func TestSelector_SortAndCap(t *testing.T) {
	config := DefaultConfig()
	config.MaxSymbols = 3
	selector, err := NewSelector(config)
	require.NoError(t, err)

	candidates := []contracts.CoarseStock{
		stock("SML1", 50000, 1.00, 50000),
		stock("BIG1", 400000, 2.00, 800000),
		stock("MID1", 100000, 1.50, 150000),
		stock("BIG2", 300000, 2.00, 600000),
		stock("SML2", 40000, 1.00, 40000),
	}

	symbols := selector.Select(3, candidates)
	assert.Equal(t, []string{"BIG1", "BIG2", "MID1"}, symbols)
}

func TestSelector_StableTies(t *testing.T) {
	config := DefaultConfig()
	config.MaxSymbols = 2
	selector, err := NewSelector(config)
	require.NoError(t, err)

	// Identical dollar volumes keep their input order
	candidates := []contracts.CoarseStock{
		stock("TIE3", 50000, 2.00, 100000),
		stock("TIE1", 50000, 2.00, 100000),
		stock("TIE2", 50000, 2.00, 100000),
	}

	symbols := selector.Select(6, candidates)
	assert.Equal(t, []string{"TIE3", "TIE1"}, symbols)
}

func TestSelector_NoDuplicateRefresh(t *testing.T) {
	selector, err := NewSelector(DefaultConfig())
	require.NoError(t, err)

	candidates := make([]contracts.CoarseStock, 0, 600)
	for i := 0; i < 600; i++ {
		candidates = append(candidates, stock(
			fmt.Sprintf("SYM%03d", i),
			50000,
			2.00,
			float64(1000+i),
		))
	}

	symbols := selector.Select(7, candidates)
	require.Len(t, symbols, 500)

	seen := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		assert.False(t, seen[sym], "duplicate symbol %s", sym)
		seen[sym] = true
	}

	// Highest dollar volume first
	assert.Equal(t, "SYM599", symbols[0])
	assert.Equal(t, "SYM100", symbols[499])
}
