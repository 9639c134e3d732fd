package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"staymarket/internal/transportation/service"
	httputil "staymarket/pkg/http"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"
)

type TransportationHandler struct {
	service service.TransportationService
	log     *logger.Logger
}

func NewTransportationHandler(service service.TransportationService, log *logger.Logger) *TransportationHandler {
	return &TransportationHandler{
		service: service,
		log:     log,
	}
}

func (h *TransportationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var transportation model.Transportation
	if err := json.NewDecoder(r.Body).Decode(&transportation); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &transportation); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, transportation); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *TransportationHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	transportation, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, transportation); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TransportationHandler) GetByUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	requests, err := h.service.GetByUser(r.Context(), ps.ByName("userId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByUser", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, requests); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByUser", "operation", "WriteSuccess", "error", err)
	}
}

func (h *TransportationHandler) Cancel(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Cancel", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Cancel(r.Context(), ps.ByName("id"), body.UserID); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Cancel", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	httputil.WriteNoContent(w)
}

func (h *TransportationHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/transportation", h.Create)
	router.GET("/api/v1/transportation/id/:id", h.GetByID)
	router.POST("/api/v1/transportation/id/:id/cancel", h.Cancel)
	router.GET("/api/v1/transportation/user/:userId", h.GetByUser)
}
