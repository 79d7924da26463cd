package gocda

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPGExportRender(t *testing.T) {
	arr, err := BuildCollection([]byte(catCollectionJSON), catTypes(), nil)
	require.NoError(t, err)

	script, err := NewPGExport("content", arr).Render()
	require.NoError(t, err)

	assert.Contains(t, script, "CREATE SCHEMA IF NOT EXISTS content;")
	assert.Contains(t, script, "CREATE TABLE IF NOT EXISTS content.cat")
	assert.Contains(t, script, "'nyancat'")
	assert.Contains(t, script, "'happycat'")
	assert.Contains(t, script, "ON CONFLICT (id) DO UPDATE")
	// Raw fields land in the jsonb column.
	assert.Contains(t, script, `"name":"Nyan Cat"`)
	// Sys timestamps come through as literals with a cast.
	assert.Contains(t, script, "'2013-06-27T22:46:19.513Z'::timestamptz")
}

func TestPGExportQuotesLiterals(t *testing.T) {
	quoted := `{
		"sys": {"type": "Array"},
		"total": 1, "skip": 0, "limit": 100,
		"items": [{
			"sys": {
				"id": "it-s-a-cat",
				"type": "Entry",
				"contentType": {"sys": {"type": "Link", "linkType": "ContentType", "id": "cat"}}
			},
			"fields": {"name": "O'Malley"}
		}]
	}`
	arr, err := BuildCollection([]byte(quoted), catTypes(), nil)
	require.NoError(t, err)

	script, err := NewPGExport("content", arr).Render()
	require.NoError(t, err)

	assert.Contains(t, script, "O''Malley")
	assert.NotContains(t, script, "O'Malley'")
}

func TestPGExportTablePerContentType(t *testing.T) {
	arr, err := BuildCollection([]byte(catCollectionJSON), catTypes(), nil)
	require.NoError(t, err)

	exp := NewPGExport("content", arr)
	require.Len(t, exp.Tables, 1)
	assert.Equal(t, "cat", exp.Tables[0].TableName)
	assert.Len(t, exp.Tables[0].Rows, 2)
}

func TestPGExportEmptyBatch(t *testing.T) {
	arr := &Array{}
	script, err := NewPGExport("content", arr).Render()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(script, "BEGIN;"))
	assert.Contains(t, script, "COMMIT;")
}
