package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gvizFixture = `/*O_o*/
google.visualization.Query.setResponse({"version":"0.6","table":{
"cols":[{"id":"A","label":"Job Title"},{"id":"B","label":""},{"id":"C","label":"Salary"}],
"rows":[
{"c":[{"v":"Plumber"},{"v":"Acme"},{"v":52000}]},
{"c":[{"v":"Roofer"},null,{"v":null}]}
]}});`

func TestParseGviz(t *testing.T) {
	rows, err := parseGviz(gvizFixture)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// labeled column, id fallback, synthesized key all in one row
	assert.Equal(t, "Plumber", rows[0].Get("Job Title"))
	assert.Equal(t, "Acme", rows[0].Get("B"))
	assert.Equal(t, "52000", rows[0].Get("Salary"))

	// null cells come through as empty strings
	assert.Equal(t, "Roofer", rows[1].Get("Job Title"))
	assert.Equal(t, "", rows[1].Get("Salary"))
}

func TestParseGviz_ColNFallback(t *testing.T) {
	text := `google.visualization.Query.setResponse({"table":{
"cols":[{"id":"","label":""}],
"rows":[{"c":[{"v":"x"}]}]}});`

	rows, err := parseGviz(text)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "x", rows[0].Get("col_0"))
}

func TestParseGviz_Malformed(t *testing.T) {
	_, err := parseGviz("google.visualization.Query.setResponse(")
	require.Error(t, err)
}
