package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	algosht "github.com/cwbudde/algo-sht"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeGrid writes a row-major n×n plane as n CSV rows.
func writeGrid(w io.Writer, data []float64, n int) error {
	cw := csv.NewWriter(w)
	record := make([]string, n)

	for j := range n {
		for k := range n {
			record[k] = formatFloat(data[j*n+k])
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// readGrid reads an n×n CSV plane and returns it row-major with n.
func readGrid(r io.Reader) ([]float64, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, err
	}

	n := len(records)
	data := make([]float64, 0, n*n)

	for j, rec := range records {
		if len(rec) != n {
			return nil, 0, fmt.Errorf("%w: row %d has %d values, want %d", algosht.ErrNotSquare, j, len(rec), n)
		}

		for k, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, 0, fmt.Errorf("row %d column %d: %w", j, k, err)
			}

			data = append(data, v)
		}
	}

	return data, n, nil
}

func readGridFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	data, n, err := readGrid(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}

	return data, n, nil
}

func writeGridFile(path string, data []float64, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeGrid(f, data, n); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writeCoefficients writes one "l,m,re,im" row per coefficient in packed
// order, after a header row.
func writeCoefficients(w io.Writer, c *algosht.Coefficients) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"l", "m", "re", "im"}); err != nil {
		return err
	}

	for i := range c.Len() {
		l, m := algosht.DegreeOrder(i, c.Bandwidth)

		err := cw.Write([]string{
			strconv.Itoa(l),
			strconv.Itoa(m),
			formatFloat(c.Re[i]),
			formatFloat(c.Im[i]),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// readCoefficients reads the format of writeCoefficients. Rows may come in
// any order; the bandwidth is derived from the row count.
func readCoefficients(r io.Reader) (*algosht.Coefficients, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) > 0 && len(records[0]) > 0 && records[0][0] == "l" {
		records = records[1:]
	}

	b := int(math.Round(math.Sqrt(float64(len(records)))))
	if b < 1 || b*b != len(records) {
		return nil, fmt.Errorf("%w: %d coefficients is not a square", algosht.ErrLengthMismatch, len(records))
	}

	c, err := algosht.NewCoefficients(b)
	if err != nil {
		return nil, err
	}

	for i, rec := range records {
		if len(rec) != 4 {
			return nil, fmt.Errorf("row %d: %d fields, want 4", i+1, len(rec))
		}

		vals := make([]float64, 4)
		for k, field := range rec {
			if vals[k], err = strconv.ParseFloat(field, 64); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}

		l, m := int(vals[0]), int(vals[1])
		if l < 0 || l >= b || m < -l || m > l {
			return nil, fmt.Errorf("row %d: %w: (%d, %d)", i+1, algosht.ErrInvalidDegree, l, m)
		}

		c.Set(l, m, complex(vals[2], vals[3]))
	}

	return c, nil
}
