package feed

import "strings"

// ParseCSV decodes RFC-4180-style CSV text into rows keyed by the header
// record. It is written as a character scanner rather than on encoding/csv
// because sheet exports are ragged in ways the stdlib reader rejects: short
// rows are padded against the header, fully blank records are skipped
// wherever they appear, and an unterminated quoted field is closed at EOF
// instead of failing the whole table.
func ParseCSV(text string) []Row {
	var records [][]string
	var record []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i++
				} else {
					inQuotes = false
				}
			} else {
				field.WriteByte(c)
			}
			continue
		}
		switch c {
		case '"':
			inQuotes = true
		case ',':
			record = append(record, field.String())
			field.Reset()
		case '\n':
			record = append(record, field.String())
			field.Reset()
			records = append(records, record)
			record = nil
		case '\r':
			// CRLF and LF both terminate on '\n'
		default:
			field.WriteByte(c)
		}
	}
	if field.Len() > 0 || len(record) > 0 {
		record = append(record, field.String())
		records = append(records, record)
	}

	for len(records) > 0 && blankRecord(records[len(records)-1]) {
		records = records[:len(records)-1]
	}
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	out := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		if blankRecord(rec) {
			continue
		}
		var row Row
		for c, h := range headers {
			v := ""
			if c < len(rec) {
				v = strings.TrimSpace(rec[c])
			}
			row.Set(h, v)
		}
		out = append(out, row)
	}
	return out
}

func blankRecord(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
