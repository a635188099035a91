package menu

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"menu-manager/feature/menu/models"
)

// ReadRows parses the menu spreadsheet into Row records, one per non-header
// line. Columns are matched by header name; short records leave the missing
// fields empty and no row is ever dropped. A missing file is a fatal error,
// surfaced before any store mutation.
func ReadRows(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open menu file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return []models.Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		cols[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return record[idx]
	}

	rows := []models.Row{}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, models.Row{
			Category:      field(record, "category"),
			CategoryOrder: field(record, "categoryOrder"),
			FileName:      field(record, "fileName"),
			ImageURL:      field(record, "image_url"),
			Name:          field(record, "name"),
			Description:   field(record, "description"),
			Price:         field(record, "price"),
			Slug:          field(record, "slug"),
			IsNew:         field(record, "isNew"),
		})
	}

	return rows, nil
}
