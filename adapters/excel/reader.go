// Package excel reads tabular simulation-output files (xlsx or CSV) into
// simulation results for batch validation. The expected table has one
// output per row: result, output, value, unit, and an optional
// semicolon-separated samples column.
package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"enercheck/domain/core"
	"enercheck/domain/simulation"
)

// DataReader handles reading Excel and CSV output tables
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a reader that handles both Excel and CSV files
func NewDataReader(filePath string) *DataReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadResults reads the output table into simulation results, grouped by
// the result column in first-seen order.
func (r *DataReader) ReadResults() ([]simulation.Result, error) {
	log.Printf("[DataReader] Reading %s file: %s", r.fileType, r.filePath)

	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath)
	}

	var rows [][]string
	var err error
	switch r.fileType {
	case "csv":
		rows, err = r.readCSVRows()
	case "xlsx":
		rows, err = r.readExcelRows()
	default:
		return nil, fmt.Errorf("unsupported file type: %s", r.fileType)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: output table must have a header row and at least one data row", core.ErrEmptyInput)
	}
	return parseRows(rows)
}

func (r *DataReader) readExcelRows() ([][]string, error) {
	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	log.Printf("[DataReader] %s read in %.2fms (%d rows)", sheet,
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	startTime := time.Now()
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	log.Printf("[DataReader] CSV read in %.2fms (%d rows)",
		float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))
	return rows, nil
}

// Column names the parser accepts, matched case-insensitively
const (
	colResult  = "result"
	colOutput  = "output"
	colValue   = "value"
	colUnit    = "unit"
	colSamples = "samples"
)

func parseRows(rows [][]string) ([]simulation.Result, error) {
	idx := map[string]int{}
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{colResult, colOutput, colValue} {
		if _, ok := idx[required]; !ok {
			return nil, core.NewMalformedInputError("output table", fmt.Sprintf("missing the %q column", required))
		}
	}

	var order []string
	grouped := map[string][]simulation.Output{}

	for n, row := range rows[1:] {
		resultName := cell(row, idx[colResult])
		outputName := cell(row, idx[colOutput])
		if resultName == "" && outputName == "" {
			continue // blank row
		}

		value, err := strconv.ParseFloat(cell(row, idx[colValue]), 64)
		if err != nil {
			return nil, core.NewMalformedInputError(fmt.Sprintf("row %d", n+2),
				fmt.Sprintf("value %q is not numeric", cell(row, idx[colValue])))
		}

		out := simulation.Output{Name: outputName, Value: value}
		if i, ok := idx[colUnit]; ok {
			out.Unit = cell(row, i)
		}
		if i, ok := idx[colSamples]; ok {
			samples, err := parseSamples(cell(row, i))
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", n+2, err)
			}
			out.Samples = samples
		}

		if _, seen := grouped[resultName]; !seen {
			order = append(order, resultName)
		}
		grouped[resultName] = append(grouped[resultName], out)
	}

	results := make([]simulation.Result, 0, len(order))
	for _, name := range order {
		results = append(results, simulation.Result{Name: name, Outputs: grouped[name]})
	}
	log.Printf("[DataReader] Parsed %d results with %d output rows", len(results), len(rows)-1)
	return results, nil
}

func parseSamples(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ";")
	samples := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("sample %q is not numeric", p)
		}
		samples = append(samples, v)
	}
	return samples, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
