package currency_test

import (
	"os"
	"testing"

	"github.com/amirasaad/transparency/internal/fixtures/currency"
	"github.com/amirasaad/transparency/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, pattern, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpFile.Close())
	return tmpFile.Name()
}

func TestLoadCurrencyMetaCSV(t *testing.T) {
	csvContent := `code,name,symbol,decimals,country,region,active
USD,US Dollar,$,2,United States,Americas,true
EUR,Euro,€,2,European Union,Europe,true
CHF,Swiss Franc,CHF,2,Switzerland,Europe,false`

	metas, err := currency.LoadCurrencyMetaCSV(writeTemp(t, "test_currency_*.csv", csvContent))
	require.NoError(t, err)
	require.Len(t, metas, 2, "inactive rows are skipped")

	usd := metas[0]
	assert.Equal(t, money.USD, usd.Code)
	assert.Equal(t, "US Dollar", usd.Name)
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, 2, usd.Decimals)
	assert.Equal(t, "United States", usd.Country)
	assert.Equal(t, "Americas", usd.Region)

	eur := metas[1]
	assert.Equal(t, money.EUR, eur.Code)
	assert.Equal(t, "€", eur.Symbol)
	assert.Equal(t, "Europe", eur.Region)
}

func TestLoadCurrencyMetaCSV_Embedded(t *testing.T) {
	metas, err := currency.LoadCurrencyMetaCSV("")
	require.NoError(t, err)
	require.Len(t, metas, len(money.Supported))

	for i, m := range metas {
		assert.Equal(t, money.Supported[i], m.Code)
		assert.NotEmpty(t, m.Name)
	}
	assert.Equal(t, 0, metas[len(metas)-1].Decimals, "JPY has no minor units")
}

func TestLoadCurrencyMetaCSV_InvalidFile(t *testing.T) {
	_, err := currency.LoadCurrencyMetaCSV("nonexistent_file.csv")
	assert.Error(t, err)
}

func TestLoadCurrencyMetaCSV_EmptyFile(t *testing.T) {
	metas, err := currency.LoadCurrencyMetaCSV(writeTemp(t, "empty_*.csv", ""))
	require.NoError(t, err)
	assert.Empty(t, metas)
}

func TestLoadCurrencyMetaCSV_InvalidCSV(t *testing.T) {
	_, err := currency.LoadCurrencyMetaCSV(writeTemp(t, "invalid_*.csv", "code,name\nUSD,US Dollar"))
	assert.Error(t, err, "Expected error for CSV with insufficient columns")
}

func TestLoadCurrencyMetaCSV_UnsupportedCode(t *testing.T) {
	csvContent := "code,name,symbol,decimals,country,region,active\nAUD,Australian Dollar,$,2,Australia,Oceania,true\n"

	_, err := currency.LoadCurrencyMetaCSV(writeTemp(t, "unsupported_*.csv", csvContent))
	assert.ErrorIs(t, err, money.ErrUnsupportedCurrency)
}
