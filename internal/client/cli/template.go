package cli

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/iudanet/notekeeper/internal/models"
)

const noteTemplate = `
=== Note ===

Title:    {{.Note.Title}}
ID:       {{.Note.ID}}
Format:   {{.Note.Format}}
{{- if .Note.CategoryID}}
Category: {{.Note.CategoryID}}
{{- end}}
{{- if .Note.Tags}}
Tags:     {{join .Note.Tags ", "}}
{{- end}}
Updated:  {{timestamp .Note.UpdatedAt}}
Sync:     {{syncState .Record}}

Content:
---
{{.Note.Content}}
---
`

const categoryTemplate = `
=== Category ===

Name:     {{.Category.Name}}
ID:       {{.Category.ID}}
{{- if .Category.Color}}
Color:    {{.Category.Color}}
{{- end}}
{{- if .Category.ParentID}}
Parent:   {{.Category.ParentID}}
{{- end}}
Updated:  {{timestamp .Category.UpdatedAt}}
Sync:     {{syncState .Record}}
`

const assistantTemplate = `
=== AI Assistant ===

Name:        {{.Assistant.Name}}
ID:          {{.Assistant.ID}}
Model:       {{.Assistant.Model}}
Endpoint:    {{.Assistant.Endpoint}}
Temperature: {{printf "%.2f" .Assistant.Temperature}}
{{- if .Assistant.SystemPrompt}}
Prompt:      {{.Assistant.SystemPrompt}}
{{- end}}
Updated:     {{timestamp .Assistant.UpdatedAt}}
Sync:        {{syncState .Record}}
`

var templateFuncs = template.FuncMap{
	"join":      strings.Join,
	"timestamp": timestamp,
	"syncState": syncState,
}

var (
	noteView      = template.Must(template.New("note").Funcs(templateFuncs).Parse(noteTemplate))
	categoryView  = template.Must(template.New("category").Funcs(templateFuncs).Parse(categoryTemplate))
	assistantView = template.Must(template.New("assistant").Funcs(templateFuncs).Parse(assistantTemplate))
)

func timestamp(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format(time.RFC3339)
}

// syncState описывает состояние записи относительно сервера
func syncState(r *models.Record) string {
	switch {
	case r == nil:
		return "unknown"
	case r.Conflict != nil:
		return fmt.Sprintf("conflict %s (run 'notekeeper resolve %s')", r.Conflict.ID, r.Conflict.ID)
	case r.SyncError != "":
		return "rejected by server: " + r.SyncError
	case r.PendingSync && r.ServerVersion == 0:
		return "pending (new)"
	case r.PendingSync:
		return fmt.Sprintf("pending (base v%d)", r.ServerVersion)
	default:
		return fmt.Sprintf("synced (v%d)", r.ServerVersion)
	}
}
