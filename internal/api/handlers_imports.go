package api

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"powerprices/internal/api/middleware"
	"powerprices/internal/worker"
)

// ImportEnqueuer queues import tasks for the worker server.
type ImportEnqueuer interface {
	EnqueueForecastImport(ctx context.Context, payload worker.ForecastImportPayload) (string, error)
	EnqueueSettlementImport(ctx context.Context, payload worker.SettlementImportPayload) (string, error)
}

// ImportAcceptedResponse is returned once an import task is queued.
type ImportAcceptedResponse struct {
	TaskID string `json:"task_id" example:"b9a3c0e4-3f5e-4f8e-9a57-0c3f1d2e4b6a"`
	Status string `json:"status" example:"QUEUED"`
}

const maxImportBody = 8 << 20

// HandleImportForecast godoc
// @Summary Queue a forecast import
// @Description Validates the run header and queues a forecast:import task. The run is stored asynchronously.
// @Tags Imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body worker.ForecastImportPayload true "Forecast run"
// @Success 202 {object} ImportAcceptedResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Queue unavailable"
// @Router /imports/forecasts [post]
func HandleImportForecast(enq ImportEnqueuer, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload worker.ForecastImportPayload
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
			return
		}
		if _, err := payload.Run(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if payload.Country == "" || len(payload.Points) == 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "country and points are required"})
			return
		}

		taskID, err := enq.EnqueueForecastImport(r.Context(), payload)
		if err != nil {
			logger.Errorw("Failed to enqueue forecast import", "country", payload.Country, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}
		logger.Infow("Forecast import queued", "task_id", taskID, "country", payload.Country,
			"subject", middleware.SubjectFromContext(r.Context()))
		writeJSON(w, http.StatusAccepted, ImportAcceptedResponse{TaskID: taskID, Status: "QUEUED"})
	}
}

// HandleImportSettlements godoc
// @Summary Queue a settlement import
// @Description Validates the curve header and queues a settlement:import task.
// @Tags Imports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body worker.SettlementImportPayload true "Settlement curve"
// @Success 202 {object} ImportAcceptedResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 401 {object} ErrorResponse "Missing or invalid token"
// @Failure 500 {object} ErrorResponse "Queue unavailable"
// @Router /imports/settlements [post]
func HandleImportSettlements(enq ImportEnqueuer, logger *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload worker.SettlementImportPayload
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxImportBody)).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
			return
		}
		if _, err := payload.Curve(); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if payload.Country == "" || len(payload.Points) == 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "country and points are required"})
			return
		}

		taskID, err := enq.EnqueueSettlementImport(r.Context(), payload)
		if err != nil {
			logger.Errorw("Failed to enqueue settlement import", "country", payload.Country, "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
			return
		}
		logger.Infow("Settlement import queued", "task_id", taskID, "country", payload.Country,
			"subject", middleware.SubjectFromContext(r.Context()))
		writeJSON(w, http.StatusAccepted, ImportAcceptedResponse{TaskID: taskID, Status: "QUEUED"})
	}
}
