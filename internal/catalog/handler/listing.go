package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"staymarket/internal/catalog/service"
	apperrors "staymarket/pkg/errors"
	httputil "staymarket/pkg/http"
	"staymarket/pkg/logger"
	"staymarket/pkg/model"
)

type ListingHandler struct {
	service service.CatalogService
	log     *logger.Logger
}

func NewListingHandler(service service.CatalogService, log *logger.Logger) *ListingHandler {
	return &ListingHandler{
		service: service,
		log:     log,
	}
}

// Browse serves the search page. All constraints arrive as query parameters;
// amenities is a comma-separated list.
func (h *ListingHandler) Browse(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, page, err := parseBrowseQuery(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Browse", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.Browse(r.Context(), filter, r.URL.Query().Get("sort"), page)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Browse", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WritePage(w, result.Listings, result.TotalCount, result.Page, result.TotalPages, result.PageTokens, result.Sort); err != nil {
		h.log.Error("failed to write page response", "handler", "Browse", "operation", "WritePage", "error", err)
	}
}

func (h *ListingHandler) GetFeatured(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listings, err := h.service.GetFeatured(r.Context())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetFeatured", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, listings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetFeatured", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ListingHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	listing, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, listing); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var listing model.Listing
	if err := json.NewDecoder(r.Body).Decode(&listing); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := h.service.Create(r.Context(), &listing); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, listing); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func parseBrowseQuery(r *http.Request) (model.FilterSet, int, error) {
	query := r.URL.Query()
	filter := model.FilterSet{
		Location:     query.Get("location"),
		PropertyType: query.Get("propertyType"),
	}

	var err error
	if filter.Guests, err = parseIntParam(query.Get("guests"), "guests"); err != nil {
		return filter, 0, err
	}
	if filter.Bedrooms, err = parseIntParam(query.Get("bedrooms"), "bedrooms"); err != nil {
		return filter, 0, err
	}
	if filter.MinPrice, err = parseFloatParam(query.Get("minPrice"), "minPrice"); err != nil {
		return filter, 0, err
	}
	if filter.MaxPrice, err = parseFloatParam(query.Get("maxPrice"), "maxPrice"); err != nil {
		return filter, 0, err
	}

	if amenities := query.Get("amenities"); amenities != "" {
		for _, a := range strings.Split(amenities, ",") {
			if a = strings.TrimSpace(a); a != "" {
				filter.Amenities = append(filter.Amenities, a)
			}
		}
	}

	page, err := parseIntParam(query.Get("page"), "page")
	if err != nil {
		return filter, 0, err
	}
	if page < 1 {
		page = 1
	}

	return filter, page, nil
}

func parseIntParam(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, value))
	}
	return n, nil
}

func parseFloatParam(value, name string) (float64, error) {
	if value == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || f < 0 {
		return 0, apperrors.InvalidInput(fmt.Sprintf("invalid %s parameter: %s", name, value))
	}
	return f, nil
}

func (h *ListingHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/listings", h.Browse)
	router.POST("/api/v1/listings", h.Create)
	router.GET("/api/v1/listings/featured", h.GetFeatured)
	router.GET("/api/v1/listings/id/:id", h.GetByID)
}
