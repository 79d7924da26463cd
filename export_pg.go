package gocda

import (
	"bytes"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const assetTableName = "_asset"

const pgExportTemplate = `BEGIN;
CREATE SCHEMA IF NOT EXISTS {{ .SchemaName }};
{{ range $tblidx, $tbl := .Tables }}
CREATE TABLE IF NOT EXISTS {{ $.SchemaName }}.{{ .TableName }} (
	id text primary key not null,
	fields jsonb not null default '{}'::jsonb,
	type text not null,
	revision integer not null default 0,
	created_at timestamptz,
	updated_at timestamptz
);
--
{{ range $rowidx, $row := .Rows }}
INSERT INTO {{ $.SchemaName }}.{{ $tbl.TableName }} (
	id,
	fields,
	type,
	revision,
	created_at,
	updated_at
) VALUES (
	{{ .ID }},
	{{ .Fields }}::jsonb,
	{{ .Type }},
	{{ .Revision }},
	{{ .CreatedAt }},
	{{ .UpdatedAt }}
)
ON CONFLICT (id) DO UPDATE
SET
	fields = EXCLUDED.fields,
	type = EXCLUDED.type,
	revision = EXCLUDED.revision,
	updated_at = EXCLUDED.updated_at;
--
{{ end -}}
{{ end -}}
COMMIT;`

// PGExportRow values are pre-quoted SQL literals, the template splices them
// verbatim.
type PGExportRow struct {
	ID        string
	Fields    string
	Type      string
	Revision  int
	CreatedAt string
	UpdatedAt string
}

type PGExportTable struct {
	TableName string
	Rows      []PGExportRow
}

// PGExport renders one resolved batch into a create-and-upsert script:
// a table per content type plus the shared asset table. It writes a
// snapshot of the batch, nothing is ever read back through it.
type PGExport struct {
	SchemaName string
	Tables     []PGExportTable
}

func NewPGExport(schemaName string, arr *Array) *PGExport {
	exp := &PGExport{SchemaName: schemaName}

	tables := make(map[string]*PGExportTable)
	order := make([]string, 0)
	table := func(name string) *PGExportTable {
		if t, ok := tables[name]; ok {
			return t
		}
		t := &PGExportTable{TableName: name}
		tables[name] = t
		order = append(order, name)
		return t
	}

	for _, r := range arr.Items {
		switch res := r.(type) {
		case *Entry:
			ct := res.ContentTypeID()
			if ct == "" {
				continue
			}
			t := table(fmtTableName(ct))
			t.Rows = append(t.Rows, newPGExportRow(res.Sys, res.Raw))
		case *Asset:
			t := table(assetTableName)
			t.Rows = append(t.Rows, newPGExportRow(res.Sys, res.Raw))
		}
	}

	for _, name := range order {
		exp.Tables = append(exp.Tables, *tables[name])
	}
	return exp
}

func newPGExportRow(sys *Sys, raw map[string]interface{}) PGExportRow {
	fields, err := json.Marshal(raw)
	if err != nil {
		fields = []byte("{}")
	}
	return PGExportRow{
		ID:        pq.QuoteLiteral(sys.ID),
		Fields:    pq.QuoteLiteral(string(fields)),
		Type:      pq.QuoteLiteral(sys.Type),
		Revision:  sys.Revision,
		CreatedAt: pgTimestamp(sys.CreatedAt),
		UpdatedAt: pgTimestamp(sys.UpdatedAt),
	}
}

func pgTimestamp(iso string) string {
	if iso == "" {
		return "NULL"
	}
	return fmt.Sprintf("%s::timestamptz", pq.QuoteLiteral(iso))
}

// Render produces the SQL script.
func (e *PGExport) Render() (string, error) {
	tmpl, err := template.New("pg_export").Parse(pgExportTemplate)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Exec renders the script and applies it. The script carries its own
// BEGIN/COMMIT, a failed statement rolls the whole export back.
func (e *PGExport) Exec(db *sqlx.DB) error {
	script, err := e.Render()
	if err != nil {
		return err
	}
	_, err = db.Exec(script)
	return err
}

// ExecDSN connects to Postgres and applies the export.
func (e *PGExport) ExecDSN(dsn string) error {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()
	return e.Exec(db)
}
