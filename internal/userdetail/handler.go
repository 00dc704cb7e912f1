package userdetail

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chatline/internal/common"
)

type Handler struct {
	details DetailService
}

func NewHandler(details DetailService) *Handler {
	return &Handler{details: details}
}

func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/crud", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/crud", h.Store).Methods(http.MethodPost)
	r.HandleFunc("/crud/{id:[0-9]+}", h.Show).Methods(http.MethodGet)
	r.HandleFunc("/crud/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/crud/{id:[0-9]+}", h.Destroy).Methods(http.MethodDelete)
}

type detailRequest struct {
	Nickname    string `json:"nickname"`
	Hobbies     string `json:"hobbies"`
	Description string `json:"description"`
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	details, err := h.details.List(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"userDetails": details})
}

func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req detailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	detail, err := h.details.Create(r.Context(), userID, req.Nickname, req.Hobbies, req.Description)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"userDetail": detail})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	detail, err := h.details.Show(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	var req detailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	detail, err := h.details.Update(r.Context(), id, userID, req.Nickname, req.Hobbies, req.Description)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"userDetail": detail})
}

func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.details.Delete(r.Context(), id, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "User detail deleted successfully!"})
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
