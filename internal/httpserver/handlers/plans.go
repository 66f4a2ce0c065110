package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dayweave/planner/internal/domain"
	"github.com/dayweave/planner/internal/httpserver/deps"
	"github.com/dayweave/planner/internal/httpserver/mw"
	"github.com/dayweave/planner/internal/logger"
	"github.com/dayweave/planner/internal/sources/genai"
	redisstore "github.com/dayweave/planner/internal/store/redis"
	"github.com/dayweave/planner/internal/utils"
)

const maxPlanBody = 1 << 20 // 1 MiB, generous for a single day plan

// CreatePlan ingests a raw upstream plan document, normalizes it and
// builds the initial itinerary with travel filled in.
func CreatePlan(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer utils.Close(r.Body)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPlanBody))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable request body")
			return
		}

		doc, err := genai.ParseDocument(body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "malformed plan document: "+err.Error())
			return
		}

		plan, err := d.Mapper.MapPlan(doc)
		if err != nil {
			d.Logger.Warn("plan document rejected", logger.Error(err))
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}

		loaded, err := d.Reconciler.Load(plan)
		if err != nil {
			d.Logger.Warn("plan reconciliation failed",
				logger.String("plan_id", plan.ID),
				logger.Error(err))
			writeError(w, reconcileStatus(err), err.Error())
			return
		}

		if err := persistPlan(r.Context(), d, loaded); err != nil {
			d.Logger.Error("failed to persist plan",
				logger.String("plan_id", loaded.ID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to persist plan")
			return
		}

		d.Logger.Info("plan created",
			logger.String("plan_id", loaded.ID),
			logger.Int("events", len(loaded.Events)),
			logger.Float64("total_cost", loaded.TotalCost),
			logger.String("user_id", mw.UserID(r.Context())))
		writeJSON(w, http.StatusCreated, loaded)
	}
}

// GetPlan returns the current state of a plan.
func GetPlan(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := fetchPlan(w, r, d)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, plan)
	}
}

// DeleteActivity removes one activity and resynthesizes the travel
// segments around the gap.
func DeleteActivity(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := fetchPlan(w, r, d)
		if !ok {
			return
		}

		activityID := chi.URLParam(r, "activityID")
		updated, err := d.Reconciler.DeleteActivity(plan, activityID)
		if err != nil {
			writeError(w, reconcileStatus(err), err.Error())
			return
		}

		if err := persistPlan(r.Context(), d, updated); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to persist plan")
			return
		}

		d.Logger.Info("activity deleted",
			logger.String("plan_id", updated.ID),
			logger.String("activity_id", activityID))
		writeJSON(w, http.StatusOK, updated)
	}
}

type reorderRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// ReorderEvents moves the event at index from to index to, then
// rebuilds travel for the new activity order.
func ReorderEvents(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := fetchPlan(w, r, d)
		if !ok {
			return
		}

		defer utils.Close(r.Body)
		var req reorderRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed reorder request")
			return
		}

		updated, err := d.Reconciler.Reorder(plan, req.From, req.To)
		if err != nil {
			writeError(w, reconcileStatus(err), err.Error())
			return
		}

		if err := persistPlan(r.Context(), d, updated); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to persist plan")
			return
		}

		d.Logger.Info("plan reordered",
			logger.String("plan_id", updated.ID),
			logger.Int("from", req.From),
			logger.Int("to", req.To))
		writeJSON(w, http.StatusOK, updated)
	}
}

type insertRequest struct {
	Activities []domain.Activity `json:"activities"`
}

// InsertActivities merges new activities into the plan in
// chronological position and rebuilds travel.
func InsertActivities(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		plan, ok := fetchPlan(w, r, d)
		if !ok {
			return
		}

		defer utils.Close(r.Body)
		var req insertRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxPlanBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "malformed insert request")
			return
		}
		if len(req.Activities) == 0 {
			writeError(w, http.StatusBadRequest, "no activities to insert")
			return
		}

		updated, err := d.Reconciler.InsertActivities(plan, req.Activities)
		if err != nil {
			writeError(w, reconcileStatus(err), err.Error())
			return
		}

		if err := persistPlan(r.Context(), d, updated); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to persist plan")
			return
		}

		d.Logger.Info("activities inserted",
			logger.String("plan_id", updated.ID),
			logger.Int("count", len(req.Activities)))
		writeJSON(w, http.StatusOK, updated)
	}
}

// fetchPlan resolves the plan named in the URL, memory index first,
// Redis as fallback. Writes the error response itself when not found.
func fetchPlan(w http.ResponseWriter, r *http.Request, d deps.Deps) (*domain.DayPlan, bool) {
	planID := chi.URLParam(r, "planID")
	if planID == "" {
		writeError(w, http.StatusBadRequest, "missing plan id")
		return nil, false
	}

	if plan, ok := d.MemoryIndex.Get(planID); ok {
		return plan, true
	}

	plan, err := d.Store.GetPlan(r.Context(), planID)
	if err != nil {
		if errors.Is(err, redisstore.ErrPlanNotFound) {
			writeError(w, http.StatusNotFound, "plan not found")
		} else {
			d.Logger.Error("failed to load plan",
				logger.String("plan_id", planID),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to load plan")
		}
		return nil, false
	}

	// Reopen the session in memory for the follow-up edits.
	d.MemoryIndex.Put(plan)
	return plan, true
}

func persistPlan(ctx context.Context, d deps.Deps, plan *domain.DayPlan) error {
	if err := d.Store.SavePlan(ctx, plan); err != nil {
		return err
	}
	d.MemoryIndex.Put(plan)
	return nil
}

func reconcileStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidClock),
		errors.Is(err, domain.ErrMissingLocation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
