package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"containermap/internal/domain"
	"containermap/internal/record"
)

// display renders a field value. Linked records show their persisted id, or
// "new" when they were created by the mapping.
func display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case record.ID:
		if x.IsNew() {
			return "false"
		}
		return x.String()
	case record.Linked:
		return x.Base().ID().String()
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func renderRecord(title string, r *record.Record) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Field", "Value"})
	for _, name := range r.Schema().Names() {
		tw.AppendRow(table.Row{name, display(r.Get(name))})
	}
	tw.Render()
}

func renderRecords(title string, schema *record.Schema, records []*record.Record) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(title)
	names := schema.Names()
	header := make(table.Row, len(names))
	for i, n := range names {
		header[i] = n
	}
	tw.AppendHeader(header)
	for _, r := range records {
		row := make(table.Row, len(names))
		for i, n := range names {
			row[i] = display(r.Get(n))
		}
		tw.AppendRow(row)
	}
	tw.Render()
}

// renderGraph prints the subcontainer followed by its top container and
// container profile, when linked.
func renderGraph(sub *domain.Subcontainer) {
	renderRecord("Subcontainer", sub.Record)
	tc := sub.TopContainer()
	if tc == nil {
		return
	}
	renderRecord("Top container", tc.Record)
	if p := tc.ContainerProfile(); p != nil {
		renderRecord("Container profile", p.Record)
	}
}

func renderErrors(errs record.ValidationErrors) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Validation errors")
	tw.AppendHeader(table.Row{"Field", "Message"})
	for _, e := range errs {
		tw.AppendRow(table.Row{e.Field, e.Message})
	}
	tw.Render()
}
