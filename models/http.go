package models

import "io"

// RegisterRequest is the JSON payload of POST /api/auth/register.
type RegisterRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginRequest is the JSON payload of POST /api/auth/login.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// ForgotPasswordRequest is the JSON payload of POST /api/auth/forgot-password.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest is the JSON payload of POST /api/auth/reset-password.
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

// ReportItemRequest carries the fields of a new item report. It arrives
// either as a JSON body or as multipart form fields when an image is
// attached.
type ReportItemRequest struct {
	Title       string   `json:"title"`
	Kind        ItemKind `json:"kind"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
}

// SetStatusRequest is the JSON payload of POST /api/items/{itemID}/status.
type SetStatusRequest struct {
	Status ItemStatus `json:"status"`
}

// ImageUpload carries an attached image from the transport layer to the
// image store. Ext is the original filename extension (".jpg", ".png");
// the stored reference itself is server-generated.
type ImageUpload struct {
	Ext  string
	Data io.Reader
}
