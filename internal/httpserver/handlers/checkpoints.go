package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dayweave/planner/internal/httpserver/deps"
	"github.com/dayweave/planner/internal/logger"
	redisstore "github.com/dayweave/planner/internal/store/redis"
	"github.com/dayweave/planner/internal/utils"
)

type checkpointRequest struct {
	SessionID string          `json:"sessionId"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
}

type claimRequest struct {
	SessionID string `json:"sessionId"`
}

// SaveCheckpoint parks an in-flight session state under a TTL so a
// redirect round-trip (login, payment) can pick it back up.
func SaveCheckpoint(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer utils.Close(r.Body)

		var req checkpointRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed checkpoint request")
			return
		}
		if req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "missing session id")
			return
		}

		cp := &redisstore.Checkpoint{
			SessionID: req.SessionID,
			Kind:      req.Kind,
			Payload:   req.Payload,
			CreatedAt: d.TimeNow(),
		}
		if err := d.Store.SaveCheckpoint(r.Context(), cp, d.CheckpointTTL); err != nil {
			d.Logger.Error("failed to save checkpoint",
				logger.String("session_id", req.SessionID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to save checkpoint")
			return
		}

		d.Logger.Info("checkpoint saved",
			logger.String("session_id", req.SessionID),
			logger.String("kind", req.Kind))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ClaimCheckpoint returns a parked checkpoint exactly once. A second
// claim, or a claim after the TTL, gets a 404.
func ClaimCheckpoint(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer utils.Close(r.Body)

		var req claimRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed claim request")
			return
		}
		if req.SessionID == "" {
			writeError(w, http.StatusBadRequest, "missing session id")
			return
		}

		cp, err := d.Store.ClaimCheckpoint(r.Context(), req.SessionID)
		if err != nil {
			d.Logger.Error("failed to claim checkpoint",
				logger.String("session_id", req.SessionID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to claim checkpoint")
			return
		}
		if cp == nil {
			writeError(w, http.StatusNotFound, "no checkpoint for session")
			return
		}

		d.Logger.Info("checkpoint claimed",
			logger.String("session_id", req.SessionID),
			logger.String("kind", cp.Kind))
		writeJSON(w, http.StatusOK, cp)
	}
}
