package applications

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"talentrack/db"
	"talentrack/models"
	"talentrack/mq"
	"talentrack/rdx"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func fetchApplications(ctx context.Context, filter bson.M) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.M{"appliedDate": -1})
	cursor, err := db.ApplicationsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Application{}
	}
	return apps, nil
}

// changedByName resolves the audit-trail author label for an HR update. The
// registration-time email cache covers the window where the profile read
// fails.
func changedByName(ctx context.Context, userID string) string {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err == nil {
		if user.DisplayName != "" {
			return user.DisplayName
		}
		if user.Email != "" {
			return user.Email
		}
	}
	if email, err := rdx.RdxGet("users:" + userID); err == nil && email != "" {
		return email
	}
	return userID
}

// ------------------ HR list and detail ------------------

func GetApplications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	apps, err := fetchApplications(ctx, bson.M{})
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	q := r.URL.Query()
	filtered := FilterApplications(apps, Filter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"applications": filtered,
		"counts":       CountByStatus(apps),
	})
}

func GetApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var app models.Application
	err := db.ApplicationsCollection.FindOne(ctx, bson.M{"applicationid": ps.ByName("id")}).Decode(&app)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		} else {
			log.Printf("DB error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, app)
}

// CreateApplication is the HR-initiated manual entry path; the public
// submission flow lives in apply.go.
func CreateApplication(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input models.Application
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	app, err := NewSubmission(input, time.Now())
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

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"applicationid": app.ApplicationID})
}

func UpdateApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var input models.Application
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateSubmission(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Content fields only; status, history, and documents have their own
	// update paths.
	update := bson.M{"$set": bson.M{
		"firstName":   input.FirstName,
		"lastName":    input.LastName,
		"email":       input.Email,
		"phone":       input.Phone,
		"position":    input.Position,
		"experience":  input.Experience,
		"education":   input.Education,
		"skills":      input.Skills,
		"salary":      input.ExpectedSalary,
		"coverLetter": input.CoverLetter,
	}}
	if !input.InterviewDate.IsZero() {
		update["$set"].(bson.M)["interviewDate"] = input.InterviewDate
	}

	result, err := db.ApplicationsCollection.UpdateOne(ctx, bson.M{"applicationid": ps.ByName("id")}, update)
	if err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update application")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"applicationid": ps.ByName("id")})
}

// UpdateApplicationStatus applies an HR pipeline move. The history entry and
// the status overwrite go out in one update so two concurrent reviewers can
// race on the final status but never lose audit entries.
func UpdateApplicationStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	var input struct {
		Status models.ApplicationStatus `json:"status"`
		Notes  string                   `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var app models.Application
	if err := db.ApplicationsCollection.FindOne(ctx, bson.M{"applicationid": id}).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		} else {
			log.Printf("DB error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	changedBy := changedByName(ctx, utils.GetUserIDFromRequest(r))
	entry, err := ChangeStatus(&app, input.Status, changedBy, input.Notes, time.Now(), PolicyFromEnv())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	set := bson.M{"status": app.Status}
	if input.Notes != "" {
		set["notes"] = input.Notes
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"statusHistory": entry},
	}

	if _, err := db.ApplicationsCollection.UpdateOne(ctx, bson.M{"applicationid": id}, update); err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	go mq.Emit("application-status-changed", models.Index{
		EntityType: "application", EntityId: id, Method: "PATCH",
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"applicationid": id,
		"status":        app.Status,
		"statusHistory": app.StatusHistory,
	})
}

// DeleteApplication removes a record for good. Files already stored for its
// document slots are left to the uploads directory's retention policy.
func DeleteApplication(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	id := ps.ByName("id")

	var app models.Application
	if err := db.ApplicationsCollection.FindOne(ctx, bson.M{"applicationid": id}).Decode(&app); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Application not found")
		return
	}

	if _, err := db.ApplicationsCollection.DeleteOne(ctx, bson.M{"applicationid": id}); err != nil {
		log.Printf("Delete error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete application")
		return
	}

	go mq.Emit("application-deleted", models.Index{
		EntityType: "application", EntityId: id, Method: "DELETE",
		ItemType: "job", ItemId: app.Position,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Application deleted"})
}

// GetMyApplications lists the caller's own submissions.
func GetMyApplications(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	apps, err := fetchApplications(ctx, bson.M{"applicantId": userID})
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch applications")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, apps)
}
