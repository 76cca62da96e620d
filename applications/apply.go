package applications

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"talentrack/db"
	"talentrack/filemgr"
	"talentrack/models"
	"talentrack/mq"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// form field names double as slot names on the upload form
var slotFields = []models.DocumentSlot{
	models.SlotResume,
	models.SlotCoverLetter,
	models.SlotPortfolio,
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ApplyToJob is the applicant-facing submission flow: multipart form fields
// plus up to three optional attachments. A failed upload records the slot as
// failed and never blocks the rest of the submission.
func ApplyToJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	jobID := ps.ByName("jobid")

	var job models.Job
	err := db.JobsCollection.FindOne(ctx, bson.M{"jobid": jobID}).Decode(&job)
	if err != nil || job.Status != models.JobActive {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	if err := r.ParseMultipartForm(filemgr.MaxDocumentSize * 4); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	input := models.Application{
		FirstName:      strings.TrimSpace(r.FormValue("firstName")),
		LastName:       strings.TrimSpace(r.FormValue("lastName")),
		Email:          strings.TrimSpace(r.FormValue("email")),
		Phone:          strings.TrimSpace(r.FormValue("phone")),
		Experience:     strings.TrimSpace(r.FormValue("experience")),
		Education:      strings.TrimSpace(r.FormValue("education")),
		Skills:         splitSkills(r.FormValue("skills")),
		ExpectedSalary: strings.TrimSpace(r.FormValue("salary")),
		CoverLetter:    strings.TrimSpace(r.FormValue("coverLetter")),
		Position:       job.Title,
		ApplicantID:    utils.GetUserIDFromRequest(r),
	}

	now := time.Now()
	ownerID := input.ApplicantID
	if ownerID == "" {
		ownerID = strings.ToLower(input.Email)
	}

	var uploadErrs []string
	for _, slot := range slotFields {
		file, header, err := filemgr.FormFile(r.MultipartForm, string(slot))
		if err != nil {
			log.Printf("Form file error for %s: %v", slot, err)
			continue
		}
		if file == nil {
			continue // slot skipped by the applicant
		}

		doc := &models.Document{
			Name:     header.Filename,
			Size:     header.Size,
			MimeType: header.Header.Get("Content-Type"),
			Status:   models.UploadPending,
		}
		input.Documents.Set(slot, doc)

		url, err := filemgr.SaveDocument(file, header, "applications", string(slot), ownerID)
		if err != nil {
			log.Printf("Upload failed for %s slot %s: %v", input.Email, slot, err)
			uploadErrs = append(uploadErrs, string(slot)+": "+err.Error())
		}
		// empty url marks the slot failed
		if recErr := RecordUploadOutcome(&input.Documents, slot, url, now); recErr != nil {
			log.Printf("Record outcome error for %s: %v", slot, recErr)
		}
	}

	app, err := NewSubmission(input, now)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application")
		return
	}

	app.ApplicationID = utils.GenerateRandomString(15)

	if _, err := db.ApplicationsCollection.InsertOne(ctx, app); err != nil {
		log.Printf("Insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save application")
		return
	}

	go mq.Emit("application-created", models.Index{
		EntityType: "application", EntityId: app.ApplicationID, Method: "POST",
		ItemType: "job", ItemId: app.Position,
	})

	resp := utils.M{
		"applicationid": app.ApplicationID,
		"status":        app.Status,
	}
	if len(uploadErrs) > 0 {
		resp["uploadErrors"] = uploadErrs
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}
