package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/rentroll/internal/model/client"
)

// CSV interchange uses one row per rental agreement; clients without rentals
// get a single row with empty rental columns. Rows sharing name and phone
// collapse back into one client on import.
var csvHeader = []string{"name", "phone", "email", "tags", "rental_address", "monthly_rent", "deposit", "customers"}

const listSeparator = ";"

func writeCSV(path string, clients []client.Client) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, c := range clients {
		base := []string{c.Name, c.Phone, c.Email, strings.Join(c.Tags, listSeparator)}
		if len(c.Rentals) == 0 {
			if err := w.Write(append(base, "", "", "", "")); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
			continue
		}
		for _, r := range c.Rentals {
			row := append(append([]string(nil), base...),
				r.Address,
				strconv.Itoa(r.MonthlyRent),
				strconv.Itoa(r.Deposit),
				strings.Join(r.Customers, listSeparator),
			)
			if err := w.Write(row); err != nil {
				return fmt.Errorf("write csv row: %w", err)
			}
		}
	}
	w.Flush()
	return w.Error()
}

func readCSV(path string) ([]client.Client, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(csvHeader)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	if isCSVHeader(records[0]) {
		records = records[1:]
	}

	var clients []client.Client
	index := make(map[string]int)
	for i, row := range records {
		name, phone := strings.TrimSpace(row[0]), strings.TrimSpace(row[1])
		if name == "" {
			return nil, fmt.Errorf("row %d: client name is required", i+1)
		}
		key := name + "\x00" + phone
		pos, seen := index[key]
		if !seen {
			c := client.New(name, phone, strings.TrimSpace(row[2]), splitList(row[3])...)
			clients = append(clients, c)
			pos = len(clients) - 1
			index[key] = pos
		}
		if address := strings.TrimSpace(row[4]); address != "" {
			rent, err := parseAmount(row[5], i+1, "monthly_rent")
			if err != nil {
				return nil, err
			}
			deposit, err := parseAmount(row[6], i+1, "deposit")
			if err != nil {
				return nil, err
			}
			rental := client.NewRentalInformation(address, rent, deposit, splitList(row[7])...)
			clients[pos].Rentals = append(clients[pos].Rentals, rental)
		}
	}
	return clients, nil
}

func isCSVHeader(row []string) bool {
	if len(row) != len(csvHeader) {
		return false
	}
	for i, cell := range row {
		if !strings.EqualFold(strings.TrimSpace(cell), csvHeader[i]) {
			return false
		}
	}
	return true
}

func splitList(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}
	parts := strings.Split(cell, listSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseAmount(cell string, row int, column string) (int, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(cell)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s %q is not a number", row, column, cell)
	}
	return value, nil
}
