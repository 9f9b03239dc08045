package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/wallet-session/internal/model"
	"github.com/AlexZinkM/wallet-session/internal/session"

	"go.uber.org/zap"
)

// SessionHandler exposes the session store to the view over HTTP
type SessionHandler struct {
	store  *session.Store
	logger *zap.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(store *session.Store, logger *zap.Logger) *SessionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionHandler{
		store:  store,
		logger: logger,
	}
}

// State handles GET /session
// @Summary      Get session state
// @Description  Returns the current session screen, modal flags and signed in account
// @Tags         session
// @Produce      json
// @Success      200  {object}  model.SessionSnapshot
// @Router       /session [get]
func (h *SessionHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, h.store.State())
}

// SetState handles POST /session/state
// @Summary      Switch session screen
// @Description  Shows the welcome, signup or signin screen
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      model.SessionStateRequest  true  "Screen"
// @Success      200      {object}  model.SessionSnapshot
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /session/state [post]
func (h *SessionHandler) SetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.SessionStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
		return
	}

	state, err := model.ParseSessionState(req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
		return
	}

	if err := h.store.SetModalSessionState(state); err != nil {
		writeError(w, http.StatusConflict, err.Error(), "invalid_transition")
		return
	}
	writeJSON(w, http.StatusOK, h.store.State())
}

// SetHelp handles POST /session/help
// @Summary      Toggle help overlay
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      model.ModalHelpRequest  true  "Overlay state"
// @Success      200      {object}  model.SessionSnapshot
// @Failure      400      {object}  model.ErrorResponse
// @Router       /session/help [post]
func (h *SessionHandler) SetHelp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.ModalHelpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
		return
	}

	h.store.SetModalHelp(req.Open)
	writeJSON(w, http.StatusOK, h.store.State())
}

// SignUp handles POST /session/signup
// @Summary      Sign up
// @Description  Validates the form, creates the account key pair from the seed phrase and signs in
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignUpFields  true  "Sign up form"
// @Success      200      {object}  model.SignUpResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Failure      422      {object}  model.ValidationErrorResponse
// @Router       /session/signup [post]
func (h *SessionHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var fields model.SignUpFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
		return
	}

	controller := session.NewSignUpController(h.store)
	controller.OnSubmit(r.Context(), fields)

	if result := controller.Validation(); !result.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, model.ValidationErrorResponse{
			Error:  "invalid sign up fields",
			Code:   "validation_failed",
			Fields: result.FieldErrors,
		})
		return
	}
	if failure := controller.Failure(); failure != "" {
		status := http.StatusBadRequest
		if controller.FailureCode() == session.FailureAccountExists {
			status = http.StatusConflict
		}
		writeError(w, status, failure, controller.FailureCode())
		return
	}

	writeJSON(w, http.StatusOK, model.SignUpResponse{
		Success: true,
		Message: "Signed up successfully",
		Account: controller.Account(),
	})
}

// Lock handles POST /session/lock
// @Summary      Lock session
// @Tags         session
// @Produce      json
// @Success      200  {object}  model.SessionSnapshot
// @Failure      409  {object}  model.ErrorResponse
// @Router       /session/lock [post]
func (h *SessionHandler) Lock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	if err := h.store.Lock(); err != nil {
		writeError(w, http.StatusConflict, err.Error(), "invalid_transition")
		return
	}
	writeJSON(w, http.StatusOK, h.store.State())
}

// Unlock handles POST /session/unlock
// @Summary      Unlock session
// @Description  Checks the account password and returns to the signed in state
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request  body      model.UnlockRequest  true  "Account password"
// @Success      200      {object}  model.SessionSnapshot
// @Failure      400      {object}  model.ErrorResponse
// @Failure      401      {object}  model.ErrorResponse
// @Failure      409      {object}  model.ErrorResponse
// @Router       /session/unlock [post]
func (h *SessionHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	var req model.UnlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), "bad_request")
		return
	}

	// Get password as []byte, use it, then zero it immediately
	password := []byte(req.Password)
	defer clear(password)

	err := h.store.Unlock(password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, h.store.State())
	case errors.Is(err, session.ErrInvalidTransition), errors.Is(err, session.ErrUnlockUnsupported):
		writeError(w, http.StatusConflict, err.Error(), "invalid_transition")
	default:
		h.logger.Debug("unlock rejected", zap.Error(err))
		writeError(w, http.StatusUnauthorized, "invalid password", "unlock_failed")
	}
}

// SignOut handles POST /session/signout
// @Summary      Sign out
// @Tags         session
// @Produce      json
// @Success      200  {object}  model.SessionSnapshot
// @Router       /session/signout [post]
func (h *SessionHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return
	}

	h.store.SignOut()
	writeJSON(w, http.StatusOK, h.store.State())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}
