package response

import (
	"github.com/google/uuid"
)

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	Nickname    string    `json:"nickname"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type SlotsResponse struct {
	AvailableTimes []string `json:"available_times"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
