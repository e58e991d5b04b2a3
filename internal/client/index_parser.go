package client

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"morinolab/site/internal/domain"
)

const idColumn = "id"

var localeSuffixes = map[string]domain.Locale{
	"Ja": domain.LocaleJapanese,
	"En": domain.LocaleEnglish,
}

type indexParser struct{}

func newIndexParser() *indexParser {
	return &indexParser{}
}

type column struct {
	name   string
	base   string // localized field base name, "" for plain attributes
	locale domain.Locale
}

func classifyColumn(name string) column {
	for suffix, l := range localeSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && base != "" {
			return column{name: name, base: base, locale: l}
		}
	}
	return column{name: name}
}

// ParseIndex turns a content index into records in file order. The first
// header column must be "id"; unknown columns are kept as attributes. Rows
// with an id that is not an integer, or a repeated id, are skipped.
func (p *indexParser) ParseIndex(source, content string) ([]domain.Record, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	if strings.TrimSpace(content) == "" {
		log.Debugf("Index %s is empty", source)
		return []domain.Record{}, nil
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &ParseError{Source: source, Line: 1, Err: fmt.Errorf("failed to read header: %w", err)}
	}

	columns := make([]column, len(header))
	for i, name := range header {
		columns[i] = classifyColumn(strings.TrimSpace(name))
	}
	if columns[0].name != idColumn {
		return nil, &ParseError{Source: source, Line: 1, Err: fmt.Errorf("first column must be %q, got %q", idColumn, columns[0].name)}
	}

	records := make([]domain.Record, 0)
	seen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			line := 0
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				line = csvErr.Line
			}
			return nil, &ParseError{Source: source, Line: line, Err: err}
		}

		line, _ := reader.FieldPos(0)
		id := strings.TrimSpace(row[0])
		if _, err := strconv.Atoi(id); err != nil {
			log.Warnf("⚠️ Skipping row %d of %s: invalid id %q", line, source, id)
			continue
		}
		if seen[id] {
			log.Warnf("⚠️ Skipping row %d of %s: duplicate id %s", line, source, id)
			continue
		}
		seen[id] = true

		records = append(records, buildRecord(id, columns, row))
	}

	log.Debugf("Parsed %d records from %s", len(records), source)
	return records, nil
}

func buildRecord(id string, columns []column, row []string) domain.Record {
	record := domain.NewRecord(id)

	for i := 1; i < len(columns); i++ {
		value := ""
		if i < len(row) {
			value = strings.TrimSpace(row[i])
		}

		col := columns[i]
		if col.base == "" {
			if col.name != "" {
				record.Attributes[col.name] = value
			}
			continue
		}

		text := record.Fields[col.base]
		if col.locale == domain.LocaleEnglish {
			text.En = value
		} else {
			text.Ja = value
		}
		record.Fields[col.base] = text
	}

	return record
}
