package adapters

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"symbol_catalog/internal/feature/symbols/usecase"
)

// ReadSymbolsCSV は "ticker,exchange" 形式のCSVを読み込みます。
// 先頭行が見出し（ticker,exchange）の場合は読み飛ばします。空行は無視します。
func ReadSymbolsCSV(r io.Reader) ([]usecase.CreateSymbolDto, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var rows []usecase.CreateSymbolDto
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read symbols csv: %w", err)
		}

		ticker, exchange := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
		if line == 1 && strings.EqualFold(ticker, "ticker") && strings.EqualFold(exchange, "exchange") {
			continue
		}
		rows = append(rows, usecase.CreateSymbolDto{Ticker: ticker, Exchange: exchange})
	}
	return rows, nil
}
