package stats

import (
	"context"
	"log"
	"net/http"

	"talentrack/applications"
	"talentrack/db"
	"talentrack/models"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recentLimit = 5

// GetDashboard aggregates the HR landing page numbers: application counts
// per pipeline status, job counts per visibility status, and the most recent
// submissions.
func GetDashboard(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	appCounts, err := countApplications(ctx)
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	jobCounts, err := countJobs(ctx)
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	recent, err := recentApplications(ctx)
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"applications": appCounts,
		"jobs":         jobCounts,
		"recent":       recent,
	})
}

func countApplications(ctx context.Context) (map[models.ApplicationStatus]int, error) {
	cursor, err := db.ApplicationsCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var apps []models.Application
	if err := cursor.All(ctx, &apps); err != nil {
		return nil, err
	}
	return applications.CountByStatus(apps), nil
}

func countJobs(ctx context.Context) (map[models.JobStatus]int64, error) {
	counts := make(map[models.JobStatus]int64, 3)
	for _, status := range []models.JobStatus{models.JobActive, models.JobPaused, models.JobClosed} {
		n, err := db.JobsCollection.CountDocuments(ctx, bson.M{"status": status})
		if err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, nil
}

func recentApplications(ctx context.Context) ([]models.Application, error) {
	opts := options.Find().SetSort(bson.M{"appliedDate": -1}).SetLimit(recentLimit)
	cursor, err := db.ApplicationsCollection.Find(ctx, bson.M{}, opts)
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
