package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Secret    string   `json:"secret"`
	Interests []string `json:"interests,omitempty"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

/// LoginResponse is the success body of POST /api/auth/login: the signed
// session token plus the public projection of the authenticated user.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// MessageResponse is a generic {msg} body used by endpoints that have no
// richer payload (registration success, deletions).
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the chatbot's reply to a single message.
type ChatResponse struct {
	Reply string `json:"reply"`
}
