package response_models

import (
	"time"

	dm "vitatrack/internal/models/domain_models"
)

type SessionResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Profile   *dm.Profile `json:"profile"`
}

type CurrentUserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}
