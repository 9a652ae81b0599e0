package app

import (
	"net/http"

	"github.com/cinehall/theater-api/api"
)

func (app *application) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	resp := api.HealthCheckResponse{
		Status:      "available",
		Environment: app.config.env,
		Version:     version,
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
