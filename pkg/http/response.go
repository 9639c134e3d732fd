package http

import (
	"encoding/json"
	"net/http"

	apperrors "staymarket/pkg/errors"
)

type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type SuccessResponse struct {
	Data any `json:"data,omitempty"`
}

// PageResponse is the envelope for paginated listing results. PageTokens is the
// compact page-number display list: numbers plus the "ellipsis" marker.
type PageResponse struct {
	Data       any    `json:"data"`
	TotalCount int    `json:"total_count"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PageTokens []any  `json:"page_tokens,omitempty"`
	Sort       string `json:"sort,omitempty"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	statusCode := appErr.HTTPStatus
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	errResp := ErrorResponse{
		Error:   appErr.Message,
		Details: appErr.Details,
	}
	if appErr.Code == apperrors.CodeInternal {
		errResp.Error = "Internal server error"
		errResp.Details = nil
	}

	return WriteJSON(w, statusCode, errResp)
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusOK, SuccessResponse{Data: data})
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteJSON(w, http.StatusCreated, SuccessResponse{Data: data})
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func WritePage(w http.ResponseWriter, data any, totalCount, page, totalPages int, tokens []any, sort string) error {
	return WriteJSON(w, http.StatusOK, PageResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       page,
		TotalPages: totalPages,
		PageTokens: tokens,
		Sort:       sort,
	})
}
