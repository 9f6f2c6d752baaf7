package models

import "time"

type VideoUpload struct {
	ID        int64     `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Filename  string    `db:"filename" json:"filename"`
	B2URL     string    `db:"b2_url" json:"b2_url"`
	AssetID   string    `db:"asset_id" json:"asset_id"`
	Status    string    `db:"status" json:"status"` // processing, ready, errored
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

const (
	UploadStatusProcessing = "processing"
	UploadStatusReady      = "ready"
	UploadStatusErrored    = "errored"
)
