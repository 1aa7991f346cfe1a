package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/deliverydesk/internal/engine"
	"github.com/akyairhashvil/deliverydesk/internal/models"
)

// GeneratePDFReport writes a progress report for the project to outDir and
// returns the absolute path of the file.
func GeneratePDFReport(ctx context.Context, svc *engine.Service, project models.Project, outDir string, now time.Time) (string, error) {
	sprints, err := svc.Sprints(ctx, project.ID)
	if err != nil {
		return "", err
	}
	milestones, err := svc.Milestones(ctx, project.ID)
	if err != nil {
		return "", err
	}
	overall, err := svc.ComputeProgress(ctx, engine.Scope{Kind: engine.ScopeProject, ID: project.ID})
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Delivery Report: %s", project.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", now.Format("2006-01-02")))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %s", FormatSummary(overall)))
	pdf.Ln(10)

	// Sprints
	for _, s := range sprints {
		sp, err := svc.SprintProgress(ctx, s.ID, now)
		if err != nil {
			return "", err
		}

		pdf.SetFont("Arial", "B", 14)
		header := fmt.Sprintf("%s (%s)", s.Name, FormatSprintWindow(s))
		if s.Contains(now) {
			header += " - active"
		}
		pdf.Cell(0, 10, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 12)
		pdf.Cell(0, 8, fmt.Sprintf("  Items: %s", FormatItemCount(sp.Items.Completed, sp.Items.Total)))
		pdf.Ln(6)
		pdf.Cell(0, 8, fmt.Sprintf("  Time elapsed: %d%%", sp.TimePercent))
		pdf.Ln(8)
	}
	if len(sprints) == 0 {
		pdf.Cell(0, 8, "No sprints scheduled.")
		pdf.Ln(8)
	}

	// Milestones
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Milestones")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	if len(milestones) == 0 {
		pdf.Cell(0, 8, "  - None defined.")
		pdf.Ln(8)
	}
	for _, ms := range milestones {
		summary, err := svc.ComputeProgress(ctx, engine.Scope{Kind: engine.ScopeMilestone, ID: ms.ID})
		if err != nil {
			return "", err
		}
		line := fmt.Sprintf("  %s: %s", ms.Title, FormatSummary(summary))
		if ms.RequiresClientApproval {
			line += fmt.Sprintf(" [approval: %s]", ms.ApprovalStatus)
		}
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	filename := filepath.Join(outDir, fmt.Sprintf("report_%s_%s.pdf", project.Slug, now.Format("2006-01-02")))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("generate PDF report: %w", err)
	}
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return filename, nil
	}
	return absPath, nil
}
