package feed

import (
	"encoding/json"
	"fmt"
	"strings"
)

// gvizMarker identifies a Google Sheets visualization-query response, e.g.
// /*O_o*/ google.visualization.Query.setResponse({...});
const gvizMarker = "google.visualization.Query.setResponse"

type gvizResponse struct {
	Table struct {
		Cols []struct {
			ID    string `json:"id"`
			Label string `json:"label"`
		} `json:"cols"`
		Rows []struct {
			C []*struct {
				V any `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

// parseGviz strips the JSONP wrapper and maps each row's cells positionally
// onto the column labels, synthesizing col_N for unlabeled columns.
func parseGviz(text string) ([]Row, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, &FormatError{Reason: "malformed visualization response"}
	}

	var resp gvizResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &resp); err != nil {
		return nil, fmt.Errorf("feed: decode visualization response: %w", err)
	}

	cols := make([]string, len(resp.Table.Cols))
	for i, c := range resp.Table.Cols {
		switch {
		case c.Label != "":
			cols[i] = c.Label
		case c.ID != "":
			cols[i] = c.ID
		}
	}

	out := make([]Row, 0, len(resp.Table.Rows))
	for _, r := range resp.Table.Rows {
		var row Row
		for idx, cell := range r.C {
			key := ""
			if idx < len(cols) {
				key = cols[idx]
			}
			if key == "" {
				key = fmt.Sprintf("col_%d", idx)
			}
			v := ""
			if cell != nil && cell.V != nil {
				v = stringifyCell(cell.V)
			}
			row.Set(key, v)
		}
		out = append(out, row)
	}
	return out, nil
}
