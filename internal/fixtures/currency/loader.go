package currency

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/transparency/pkg/currency"
	"github.com/amirasaad/transparency/pkg/money"
)

//go:embed meta.csv
var metaCSV string

// LoadCurrencyMetaCSV loads currency metadata from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content.
func LoadCurrencyMetaCSV(path string) ([]currency.Meta, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	} else {
		r = strings.NewReader(metaCSV)
	}

	return parseCurrencyMetaCSV(r)
}

func parseCurrencyMetaCSV(r io.Reader) ([]currency.Meta, error) {
	csvReader := csv.NewReader(r)
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}

	var metas []currency.Meta
	for i, rec := range records {
		if i == 0 {
			// Verify header has all required columns
			expectedColumns := 7
			if len(rec) < expectedColumns {
				errMsg := fmt.Sprintf(
					"invalid CSV format: expected at least %d columns, got %d",
					expectedColumns,
					len(rec),
				)
				return nil, errors.New(errMsg)
			}
			continue // skip header
		}

		// Skip malformed rows
		if len(rec) < 7 {
			continue
		}
		if strings.ToLower(rec[6]) != "true" {
			continue
		}

		code, err := money.ParseCode(rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		decimals, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid decimals %q: %w", i+1, rec[3], err)
		}

		metas = append(metas, currency.Meta{
			Code:     code,
			Name:     rec[1],
			Symbol:   rec[2],
			Decimals: decimals,
			Country:  rec[4],
			Region:   rec[5],
		})
	}
	return metas, nil
}
