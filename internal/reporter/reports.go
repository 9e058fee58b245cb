package reporter

import "github.com/Firav/whackerlink-v4/internal/models"

// Wire shapes posted to the collector. Key names are the collector's schema
// and must not drift with Go renames, so every field carries an explicit tag.

// EventReport is the envelope for a single packet event.
type EventReport struct {
	Type         models.PacketType   `json:"Type"`
	SrcId        string              `json:"SrcId"`
	DstId        string              `json:"DstId"`
	Site         models.Site         `json:"Site"`
	ResponseType models.ResponseType `json:"ResponseType"`
	Extra        string              `json:"Extra"`
	Lat          *string             `json:"Lat"`
	Long         *string             `json:"Long"`
	Timestamp    string              `json:"Timestamp"`
}

// SiteBcastReport is the envelope for a site-list broadcast.
type SiteBcastReport struct {
	Type      models.PacketType `json:"Type"`
	Sites     []models.Site     `json:"Sites"`
	Timestamp string            `json:"Timestamp"`
}

// StatusBcastReport is the envelope for a site-status broadcast.
type StatusBcastReport struct {
	Type      models.PacketType  `json:"Type"`
	Site      models.Site        `json:"Site"`
	Status    models.StatusValue `json:"Status"`
	Timestamp string             `json:"Timestamp"`
}
