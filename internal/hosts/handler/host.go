package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"staymarket/internal/hosts/service"
	apperrors "staymarket/pkg/errors"
	httputil "staymarket/pkg/http"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"
)

// maxImageBytes caps a single uploaded image.
const maxImageBytes = 5 << 20

type HostHandler struct {
	service service.HostService
	log     *logger.Logger
}

func NewHostHandler(service service.HostService, log *logger.Logger) *HostHandler {
	return &HostHandler{
		service: service,
		log:     log,
	}
}

func (h *HostHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var host model.Host
	if err := json.NewDecoder(r.Body).Decode(&host); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &host); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, host); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *HostHandler) GetByUserID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	host, err := h.service.GetByUserID(r.Context(), ps.ByName("userId"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByUserID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, host); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByUserID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *HostHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.HostUpdate
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Update", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	host, err := h.service.Update(r.Context(), ps.ByName("userId"), &updates)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Update", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, host); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

// UploadImage accepts a multipart form with a single "image" part and
// responds with the stored object's URL.
func (h *HostHandler) UploadImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid multipart form")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UploadImage", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Missing image part")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UploadImage", "operation", "WriteError", "error", writeErr)
		}
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		if writeErr := httputil.WriteError(w, apperrors.Internal("Failed to read image", err)); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UploadImage", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	url, err := h.service.UploadImage(r.Context(), ps.ByName("userId"), content, header.Header.Get("Content-Type"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UploadImage", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, map[string]string{"url": url}); err != nil {
		h.log.Error("failed to write created response", "handler", "UploadImage", "operation", "WriteCreated", "error", err)
	}
}

func (h *HostHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/hosts", h.Create)
	router.GET("/api/v1/hosts/user/:userId", h.GetByUserID)
	router.PATCH("/api/v1/hosts/user/:userId", h.Update)
	router.POST("/api/v1/hosts/user/:userId/images", h.UploadImage)
}
