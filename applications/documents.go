package applications

import (
	"log"
	"net/http"
	"time"

	"talentrack/db"
	"talentrack/filemgr"
	"talentrack/models"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadDocument stores (or replaces) one attachment slot on an existing
// application. A rejected or failed store records the slot as failed rather
// than erroring the application; the outcome never touches the pipeline
// status.
func UploadDocument(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")
	slot := models.DocumentSlot(ps.ByName("slot"))

	if !slot.Valid() {
		utils.RespondWithError(w, http.StatusBadRequest, "Unknown document slot")
		return
	}

	var app models.Application
	if err := db.ApplicationsCollection.FindOne(ctx, bson.M{"applicationid": id}).Decode(&app); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		return
	}

	if err := r.ParseMultipartForm(filemgr.MaxDocumentSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := filemgr.FormFile(r.MultipartForm, "file")
	if err != nil || file == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing file")
		return
	}

	ownerID := app.ApplicantID
	if ownerID == "" {
		ownerID = app.ApplicationID
	}

	doc := &models.Document{
		Name:     header.Filename,
		Size:     header.Size,
		MimeType: header.Header.Get("Content-Type"),
		Status:   models.UploadPending,
	}
	app.Documents.Set(slot, doc)

	url, saveErr := filemgr.SaveDocument(file, header, "applications", string(slot), ownerID)
	if saveErr != nil {
		log.Printf("Upload failed for application %s slot %s: %v", id, slot, saveErr)
	}
	if err := RecordUploadOutcome(&app.Documents, slot, url, time.Now()); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{"documents." + string(slot): app.Documents.Get(slot)}}
	if _, err := db.ApplicationsCollection.UpdateOne(ctx, bson.M{"applicationid": id}, update); err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to record document")
		return
	}

	status := http.StatusOK
	resp := utils.M{
		"applicationid": id,
		"slot":          slot,
		"document":      app.Documents.Get(slot),
	}
	if saveErr != nil {
		resp["error"] = saveErr.Error()
	}
	utils.RespondWithJSON(w, status, resp)
}
