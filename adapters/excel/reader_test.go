package excel

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"enercheck/domain/core"
)

func writeXLSXFixture(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cellRef, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "outputs.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save fixture: %v", err)
	}
	return path
}

func TestReadResultsFromXLSX(t *testing.T) {
	path := writeXLSXFixture(t, [][]interface{}{
		{"result", "output", "value", "unit", "samples"},
		{"annual-yield", "System Efficiency", 19.2, "%", ""},
		{"annual-yield", "Capacity Factor", 0.24, "", ""},
		{"cycle-model", "round-trip efficiency", 0.91, "", "0.90;0.91;0.92"},
	})

	results, err := NewDataReader(path).ReadResults()
	if err != nil {
		t.Fatalf("ReadResults: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("expected 2 grouped results, got %d", len(results))
	}
	if results[0].Name != "annual-yield" || len(results[0].Outputs) != 2 {
		t.Errorf("first result = %+v, want annual-yield with 2 outputs", results[0])
	}
	if results[1].Name != "cycle-model" {
		t.Errorf("grouping must preserve first-seen order, got %q", results[1].Name)
	}

	rt := results[1].Outputs[0]
	if rt.Value != 0.91 || len(rt.Samples) != 3 || rt.Samples[2] != 0.92 {
		t.Errorf("samples column parsed wrong: %+v", rt)
	}
	if results[0].Outputs[0].Unit != "%" {
		t.Errorf("unit column lost: %+v", results[0].Outputs[0])
	}
}

func TestReadResultsFromCSV(t *testing.T) {
	csv := "result,output,value,unit\n" +
		"wake-model,capacity factor,0.38,\n" +
		"wake-model,power coefficient,0.45,\n"
	path := filepath.Join(t.TempDir(), "outputs.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	results, err := NewDataReader(path).ReadResults()
	if err != nil {
		t.Fatalf("ReadResults: %v", err)
	}
	if len(results) != 1 || len(results[0].Outputs) != 2 {
		t.Fatalf("expected one result with two outputs, got %+v", results)
	}
	if results[0].Outputs[1].Value != 0.45 {
		t.Errorf("value parsed wrong: %+v", results[0].Outputs[1])
	}
}

func TestReadResultsErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := NewDataReader(filepath.Join(t.TempDir(), "nope.csv")).ReadResults(); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("missing column", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		os.WriteFile(path, []byte("result,value\nrun,1\n"), 0o644)
		_, err := NewDataReader(path).ReadResults()
		if !errors.Is(err, core.ErrMalformedInput) {
			t.Errorf("a missing output column should be malformed input, got %v", err)
		}
	})

	t.Run("non-numeric value", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		os.WriteFile(path, []byte("result,output,value\nrun,efficiency,high\n"), 0o644)
		_, err := NewDataReader(path).ReadResults()
		if !core.IsInputError(err) {
			t.Errorf("a non-numeric value should classify as an input error, got %v", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		os.WriteFile(path, []byte("result,output,value\n"), 0o644)
		_, err := NewDataReader(path).ReadResults()
		if !errors.Is(err, core.ErrEmptyInput) {
			t.Errorf("a data-less table should be empty input, got %v", err)
		}
	})
}
