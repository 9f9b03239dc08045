package model

// SignUpResponse represents response for POST /session/signup
type SignUpResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Account *Account `json:"account,omitempty"`
}

// SessionStateRequest represents request for POST /session/state
type SessionStateRequest struct {
	State string `json:"state" binding:"required"`
}

// ModalHelpRequest represents request for POST /session/help
type ModalHelpRequest struct {
	Open bool `json:"open"`
}

// UnlockRequest represents request for POST /session/unlock
type UnlockRequest struct {
	Password string `json:"password" binding:"required"`
}

// NotificationsResponse represents response for GET /notifications
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
}
