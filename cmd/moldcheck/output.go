package main

import (
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/latentform/mold/constraint"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow)
	featureColor = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
)

// printer formats numbers for human-readable output.
var printer = message.NewPrinter(language.English)

func levelLabel(l constraint.Level) string {
	switch l {
	case constraint.LevelError:
		return errorColor.Sprint(l.String())
	case constraint.LevelWarning:
		return warningColor.Sprint(l.String())
	default:
		return featureColor.Sprint(l.String())
	}
}

func writeReportText(w io.Writer, faces int, r *constraint.Report) {
	headerColor.Fprintln(w, "Manufacturability report")
	printer.Fprintf(w, "Faces checked: %d\n", faces)
	for _, v := range r.Violations() {
		printer.Fprintf(w, "  %-7s face %4d  severity %8.3f  %s\n", levelLabel(v.Level), v.FaceID, v.Severity, v.Description)
		printer.Fprintf(w, "          %s\n", v.Suggestion)
	}
	printer.Fprintf(w, "Summary: %s\n", r.Summary())
}

// reportDocument is the YAML form of a report.
type reportDocument struct {
	Faces      int                    `yaml:"faces"`
	Summary    string                 `yaml:"summary"`
	Errors     int                    `yaml:"errors"`
	Warnings   int                    `yaml:"warnings"`
	Violations []constraint.Violation `yaml:"violations"`
}

func newReportDocument(faces int, r *constraint.Report) reportDocument {
	return reportDocument{
		Faces:      faces,
		Summary:    r.Summary(),
		Errors:     r.ErrorCount(),
		Warnings:   r.WarningCount(),
		Violations: r.Violations(),
	}
}
