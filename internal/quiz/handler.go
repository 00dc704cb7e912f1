package quiz

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chatline/internal/common"
)

type Handler struct {
	quizzes QuizService
}

func NewHandler(quizzes QuizService) *Handler {
	return &Handler{quizzes: quizzes}
}

func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/quiz/generate", h.Generate).Methods(http.MethodPost)
	r.HandleFunc("/quiz", h.Index).Methods(http.MethodGet)
	r.HandleFunc("/quiz", h.Store).Methods(http.MethodPost)
	r.HandleFunc("/quiz/{id:[0-9]+}", h.Show).Methods(http.MethodGet)
	r.HandleFunc("/quiz/{id:[0-9]+}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/quiz/{id:[0-9]+}", h.Destroy).Methods(http.MethodDelete)
}

type generateRequest struct {
	Topic        string `json:"topic"`
	Description  string `json:"description"`
	NumQuestions int    `json:"numQuestions"`
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	questions, err := h.quizzes.Generate(req.Topic, req.Description, req.NumQuestions)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

type quizRequest struct {
	Topic       string          `json:"topic"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
}

func (h *Handler) Store(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	quiz, err := h.quizzes.Create(r.Context(), userID, req.Topic, req.Description, req.Questions)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"quiz":    quiz,
		"message": "Quiz and questions saved successfully.",
	})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quiz id"})
		return
	}

	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	quiz, err := h.quizzes.Update(r.Context(), id, userID, req.Topic, req.Description, req.Questions)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"quiz":    quiz,
		"message": "Quiz and questions updated successfully.",
	})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	quizzes, err := h.quizzes.ListByUser(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"quizzes": quizzes})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if _, ok := common.UserIDFromContext(r.Context()); !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quiz id"})
		return
	}

	quiz, err := h.quizzes.ByID(r.Context(), id)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"quiz": quiz})
}

func (h *Handler) Destroy(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}
	id, err := pathID(r)
	if err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid quiz id"})
		return
	}

	if err := h.quizzes.Delete(r.Context(), id, userID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "Quiz deleted successfully."})
}

func pathID(r *http.Request) (uint, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
