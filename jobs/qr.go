package jobs

import (
	"fmt"
	"net/http"
	"os"

	"talentrack/db"
	"talentrack/models"
	"talentrack/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// JobQR renders a PNG QR code linking to a posting's public page, for flyers
// and job-fair handouts. Only active postings get a code.
func JobQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()
	jobID := ps.ByName("jobid")

	var job models.Job
	err := db.JobsCollection.FindOne(ctx, bson.M{"jobid": jobID}).Decode(&job)
	if err != nil || !VisibleOnPublicBoard(&job) {
		utils.RespondWithError(w, http.StatusNotFound, "Job not found")
		return
	}

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	link := fmt.Sprintf("%s/api/board/jobs/%s", baseURL, jobID)

	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
