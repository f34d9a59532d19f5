package models

type User struct {
	ID         int64  `json:"id" db:"id"`
	ExternalID string `json:"external_id" db:"external_id"`
	Username   string `json:"username" db:"username"`
}

type Profile struct {
	UserID    int64  `json:"user_id" db:"user_id"`
	Username  string `json:"username" db:"username"`
	AvatarURL string `json:"avatar_url" db:"avatar_url"`
}
