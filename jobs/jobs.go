package jobs

import (
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

func filterFromQuery(r *http.Request) Filter {
	q := r.URL.Query()
	return Filter{
		Status:     q.Get("status"),
		Search:     q.Get("search"),
		Department: q.Get("department"),
		Type:       q.Get("type"),
	}
}

func fetchJobs(r *http.Request, filter bson.M) ([]models.Job, error) {
	ctx := r.Context()
	opts := options.Find().SetSort(bson.M{"createdDate": -1})
	cursor, err := db.JobsCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// ------------------ HR job list ------------------

func GetJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	jobs, err := fetchJobs(r, bson.M{})
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, FilterJobs(jobs, filterFromQuery(r)))
}

func GetJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var job models.Job
	err := db.JobsCollection.FindOne(ctx, bson.M{"jobid": ps.ByName("jobid")}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		} else {
			log.Printf("DB error: %v", err)
			utils.RespondWithError(w, http.StatusInternalServerError, "Database error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, job)
}

func CreateJob(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx := r.Context()

	var input models.Job
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := NewPosting(input, time.Now())
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			utils.RespondWithError(w, http.StatusBadRequest, verr.Error())
			return
		}
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job")
		return
	}

	job.JobID = utils.GenerateRandomString(15)
	job.OwnerID = utils.GetUserIDFromRequest(r)

	if _, err := db.JobsCollection.InsertOne(ctx, job); err != nil {
		log.Printf("Insert error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save job")
		return
	}

	invalidateBoardCache()
	go mq.Emit("job-created", models.Index{
		EntityType: "job", EntityId: job.JobID, Method: "POST",
	})

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"jobid": job.JobID})
}

func UpdateJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var input models.Job
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := ValidateJob(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	update := bson.M{"$set": bson.M{
		"title":        input.Title,
		"department":   input.Department,
		"location":     input.Location,
		"type":         input.Type,
		"description":  input.Description,
		"requirements": input.Requirements,
		"benefits":     input.Benefits,
		"salaryRange":  input.SalaryRange,
		"updatedAt":    time.Now(),
	}}

	result, err := db.JobsCollection.UpdateOne(ctx, bson.M{"jobid": ps.ByName("jobid")}, update)
	if err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	invalidateBoardCache()
	go mq.Emit("job-updated", models.Index{
		EntityType: "job", EntityId: ps.ByName("jobid"), Method: "PUT",
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"jobid": ps.ByName("jobid")})
}

func UpdateJobStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var input struct {
		Status models.JobStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var job models.Job
	if err := SetStatus(&job, input.Status); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := db.JobsCollection.UpdateOne(ctx,
		bson.M{"jobid": ps.ByName("jobid")},
		bson.M{"$set": bson.M{"status": job.Status, "updatedAt": time.Now()}},
	)
	if err != nil {
		log.Printf("Update error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update job status")
		return
	}
	if result.MatchedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	invalidateBoardCache()
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"jobid":  ps.ByName("jobid"),
		"status": string(job.Status),
	})
}

func DeleteJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	result, err := db.JobsCollection.DeleteOne(ctx, bson.M{"jobid": ps.ByName("jobid")})
	if err != nil {
		log.Printf("Delete error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete job")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	invalidateBoardCache()
	go mq.Emit("job-deleted", models.Index{
		EntityType: "job", EntityId: ps.ByName("jobid"), Method: "DELETE",
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Job deleted"})
}

// ------------------ Public board ------------------

const boardCacheKey = "board:jobs:active"
const boardCacheTTL = 60 * time.Second

func invalidateBoardCache() {
	if err := rdx.RdxDel(boardCacheKey); err != nil {
		log.Printf("Failed to invalidate board cache: %v", err)
	}
}

// boardJobs returns the active postings, from cache when fresh. Query-level
// filters are applied after the cache so every board request shares one
// cached list.
func boardJobs(r *http.Request) ([]models.Job, error) {
	if cached := rdx.CacheGet(boardCacheKey); cached != "" {
		var jobs []models.Job
		if err := json.Unmarshal([]byte(cached), &jobs); err == nil {
			return jobs, nil
		}
	}

	jobs, err := fetchJobs(r, bson.M{"status": models.JobActive})
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(jobs); err == nil {
		if err := rdx.SetWithExpiry(boardCacheKey, string(data), boardCacheTTL); err != nil {
			log.Printf("Failed to cache board jobs: %v", err)
		}
	}
	return jobs, nil
}

func GetBoardJobs(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	jobs, err := boardJobs(r)
	if err != nil {
		log.Printf("DB error: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch jobs")
		return
	}

	f := filterFromQuery(r)
	f.Status = "" // the board is active-only by construction
	filtered := FilterJobs(PublicBoard(jobs), f)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"jobs":        filtered,
		"departments": Departments(PublicBoard(jobs)),
	})
}

func GetBoardJob(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var job models.Job
	err := db.JobsCollection.FindOne(ctx, bson.M{"jobid": ps.ByName("jobid")}).Decode(&job)
	if err != nil || !VisibleOnPublicBoard(&job) {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, job)
}
