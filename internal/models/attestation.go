package models

import "time"

// AttestationDocument is the composed plain-text attestation
type AttestationDocument struct {
	Body     string
	IssuedAt time.Time
}

// RenderedFile is a generated attestation on disk
type RenderedFile struct {
	ID        string    `json:"id"`
	Path      string    `json:"-"`
	FileName  string    `json:"file_name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// APIInfo describes the service on the root endpoint
type APIInfo struct {
	Info APIInfoDetails `json:"info"`
}

// APIInfoDetails holds the descriptive fields of APIInfo
type APIInfoDetails struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Version     string     `json:"version"`
	Contact     APIContact `json:"contact"`
}

// APIContact identifies the maintainers
type APIContact struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
