package applications

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"talentrack/db"
	"talentrack/models"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson"
)

// ExportApplicationPDF renders a one-page candidate summary for interview
// packets.
func ExportApplicationPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	var app models.Application
	if err := db.ApplicationsCollection.FindOne(ctx, bson.M{"applicationid": id}).Decode(&app); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("%s %s", app.FirstName, app.LastName))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s", app.Position))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s    Applied: %s", app.Status, app.AppliedDate.Format("Jan 2, 2006")))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Email: %s    Phone: %s", app.Email, app.Phone))
	pdf.Ln(10)

	section := func(title, body string) {
		if body == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, body, "", "L", false)
		pdf.Ln(4)
	}

	section("Experience", app.Experience)
	section("Education", app.Education)
	if len(app.Skills) > 0 {
		section("Skills", strings.Join(app.Skills, ", "))
	}
	section("Expected Salary", app.ExpectedSalary)
	section("Cover Letter", app.CoverLetter)
	section("HR Notes", app.Notes)

	if len(app.StatusHistory) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, "Status History")
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		for _, entry := range app.StatusHistory {
			line := fmt.Sprintf("%s - %s by %s", entry.ChangedAt.Format("2006-01-02 15:04"), entry.Status, entry.ChangedBy)
			if entry.Notes != "" {
				line += " (" + entry.Notes + ")"
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(5)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=application-"+id+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
