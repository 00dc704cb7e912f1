package user

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"chatline/internal/common"
	"chatline/internal/dbmongo"
)

// maxAvatarBytes caps avatar uploads at 5 MiB.
const maxAvatarBytes = 5 << 20

type Handler struct {
	userService UserService
	avatars     *dbmongo.AvatarStorage
}

func NewHandler(userService UserService, avatars *dbmongo.AvatarStorage) *Handler {
	return &Handler{userService: userService, avatars: avatars}
}

// PublicRoutes mounts the endpoints reachable without a token.
func (h *Handler) PublicRoutes(r *mux.Router) {
	r.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", h.Login).Methods(http.MethodPost)
}

// Routes mounts the authenticated user endpoints. Avatar routes are only
// available when avatar storage was configured.
func (h *Handler) Routes(r *mux.Router) {
	r.HandleFunc("/user/profile", h.Profile).Methods(http.MethodGet)
	if h.avatars != nil {
		r.HandleFunc("/user/avatar", h.UploadAvatar).Methods(http.MethodPost)
		r.HandleFunc("/user/avatar/{id}", h.DownloadAvatar).Methods(http.MethodGet)
	}
}

type registerRequest struct {
	Handle   string `json:"handle"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, token, err := h.userService.RegisterUser(r.Context(), req.Handle, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

type loginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, token, err := h.userService.LoginUser(r.Context(), req.Handle, req.Password)
	if err != nil {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid handle or password"})
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	user, err := h.userService.UserByID(r.Context(), userID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		common.WriteError(w, common.NewValidationError("avatar", "file too large or malformed"))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		common.WriteError(w, common.NewValidationError("avatar", "The avatar field is required."))
		return
	}
	defer file.Close()

	avatar, err := h.avatars.Upload(r.Context(), header.Filename, header.Header.Get("Content-Type"), userID, file)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if err := h.userService.SetAvatar(r.Context(), userID, avatar.ID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, map[string]interface{}{"avatar": avatar})
}

func (h *Handler) DownloadAvatar(w http.ResponseWriter, r *http.Request) {
	fileID := mux.Vars(r)["id"]

	stream, avatar, err := h.avatars.Download(r.Context(), fileID)
	if err != nil {
		common.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "avatar not found"})
		return
	}

	if avatar.MimeType != "" {
		w.Header().Set("Content-Type", avatar.MimeType)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, stream); err != nil {
		return
	}
}
