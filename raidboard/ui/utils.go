package ui

import (
	"embed"
	"html/template"
	"net/http"

	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
)

//go:embed templates
var templatesFS embed.FS

var funcMap = template.FuncMap{
	"kpiLabel": func(met bool) string {
		if met {
			return "✓ Met"
		}
		return "✗ Not Met"
	},
	"statusClass": func(s constants.ReviewStatus) string {
		switch s {
		case constants.ReviewApproved:
			return "badge-green"
		case constants.ReviewRejected:
			return "badge-red"
		}
		return "badge-yellow"
	},
	"paymentLabel": func(s constants.PaymentStatus) string {
		if s == constants.PaymentPaid {
			return "Paid"
		}
		return "Unpaid"
	},
	"deref": func(v *int) int {
		if v == nil {
			return 0
		}
		return *v
	},
}

// RenderTemplate renders a page inside the base layout.
func RenderTemplate(w http.ResponseWriter, templateName string, data map[string]interface{}, statusCode ...int) error {
	t, err := template.New("base.html").Funcs(funcMap).ParseFS(
		templatesFS,
		"templates/layouts/base.html",
		"templates/"+templateName,
	)
	if err != nil {
		logging.Error("Error loading template", "template", templateName, "error", err.Error())
		http.Error(w, "Error loading template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if len(statusCode) > 0 {
		w.WriteHeader(statusCode[0])
	}
	if err := t.Execute(w, data); err != nil {
		logging.Error("Error rendering template", "template", templateName, "error", err.Error())
		return err
	}
	return nil
}
