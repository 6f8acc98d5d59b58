package dto

type StatsStatusResponse struct {
	LastRun   string `json:"last_run,omitempty"`
	LastError string `json:"last_error,omitempty"`
	Healthy   bool   `json:"healthy"`
}

type StorageEvent struct {
	Name   string `json:"name"`
	Bucket string `json:"bucket,omitempty"`
}
