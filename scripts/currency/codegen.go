package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"

	xcurrency "golang.org/x/text/currency"
)

// The generator is run by go generate from the currency package directory.
var (
	dataFile     = filepath.Join("..", "scripts", "currency", "currency_data.csv")
	templateFile = filepath.Join("..", "scripts", "currency", "currency_data.tmpl")
	outputFile   = "iso_data.go"
)

type currency struct {
	Name      string
	Code      string
	Num       string
	Scale     int
	Increment int
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(dataFile)
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the currency objects using a template
	code, err := generateGoCode(templateFile, currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile(outputFile, code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// XXX goes first, the rest is ordered by code
	sort.Slice(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		switch {
		case a == "XXX":
			return true
		case b == "XXX":
			return false
		}
		return a < b
	})

	currs := make([]currency, 0, len(data))
	for _, rec := range data {
		if len(rec) != 5 {
			return nil, fmt.Errorf("record %v: want 5 fields, got %v", rec, len(rec))
		}
		code := rec[1]
		if code != "XXX" {
			// Cross-check the code against CLDR
			if _, err := xcurrency.ParseISO(code); err != nil {
				return nil, fmt.Errorf("record %v: %w", rec, err)
			}
		}
		scale, err := strconv.Atoi(rec[3])
		if err != nil || scale < 0 {
			return nil, fmt.Errorf("record %v: invalid scale %q", rec, rec[3])
		}
		inc, err := strconv.Atoi(rec[4])
		if err != nil || inc < 0 {
			return nil, fmt.Errorf("record %v: invalid rounding increment %q", rec, rec[4])
		}
		currs = append(currs, currency{
			Name:      rec[0],
			Code:      code,
			Num:       rec[2],
			Scale:     scale,
			Increment: inc,
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
