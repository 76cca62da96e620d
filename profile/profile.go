package profile

import (
	"encoding/json"
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

func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var profile models.ProfileResponse
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&profile); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

func UpdateProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	var input struct {
		DisplayName string `json:"displayName"`
		FirstName   string `json:"firstName"`
		LastName    string `json:"lastName"`
		Phone       string `json:"phone"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	update := bson.M{"$set": bson.M{
		"displayName": input.DisplayName,
		"firstName":   input.FirstName,
		"lastName":    input.LastName,
		"phone":       input.Phone,
		"updated_at":  time.Now(),
	}}

	result, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, update)
	if err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Profile updated"})
}

func UploadProfilePicture(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()
	userID := utils.GetUserIDFromRequest(r)

	if err := r.ParseMultipartForm(filemgr.MaxPictureSize * 2); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid form data")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := filemgr.FormFile(r.MultipartForm, "picture")
	if err != nil || file == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing picture")
		return
	}

	url, thumbURL, err := filemgr.SaveProfilePicture(file, header, userID)
	if err != nil {
		log.Printf("Picture upload failed for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{"profilePicture": url, "updated_at": time.Now()}}
	if _, err := db.UserCollection.UpdateOne(ctx, bson.M{"userid": userID}, update); err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save picture")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"profilePicture": url,
		"thumbnail":      thumbURL,
	})
}
