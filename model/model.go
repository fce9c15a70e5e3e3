// Package model holds the Contentful types referenced by generated Go
// structs.
package model

import "time"

type Link struct {
	Sys LinkSys `json:"sys"`
}

type LinkSys struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	LinkType string `json:"linkType,omitempty"`
}

type SystemProperties struct {
	ID          string     `json:"id"`
	Type        string     `json:"type,omitempty"`
	Revision    int        `json:"revision,omitempty"`
	Locale      string     `json:"locale,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	Space       *Link      `json:"space,omitempty"`
	Environment *Link      `json:"environment,omitempty"`
	ContentType *Link      `json:"contentType,omitempty"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Asset struct {
	Sys         SystemProperties `json:"sys"`
	Title       string           `json:"title,omitempty"`
	Description string           `json:"description,omitempty"`
	File        *File            `json:"file,omitempty"`
}

type File struct {
	URL         string       `json:"url"`
	FileName    string       `json:"fileName,omitempty"`
	ContentType string       `json:"contentType,omitempty"`
	Details     *FileDetails `json:"details,omitempty"`
}

type FileDetails struct {
	Size  int64      `json:"size,omitempty"`
	Image *ImageSize `json:"image,omitempty"`
}

type ImageSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}
