package models

// Location is a site's coordinates in decimal degrees.
type Location struct {
	Lat  float64 `json:"Lat"`
	Long float64 `json:"Long"`
}

// Site describes one radio site on the network. Field names follow the
// collector's wire schema, so tags are fixed here rather than left to
// Go defaults.
type Site struct {
	Name           string   `json:"Name"`
	SiteID         string   `json:"SiteID"`
	County         string   `json:"County"`
	State          string   `json:"State"`
	ControlChannel string   `json:"ControlChannel"`
	VoiceChannels  []string `json:"VoiceChannels"`
	Location       Location `json:"Location"`
}

// StatusValue is a site's operational status in a status broadcast.
type StatusValue string

const (
	StatusOK          StatusValue = "OK"
	StatusDegraded    StatusValue = "DEGRADED"
	StatusDown        StatusValue = "DOWN"
	StatusMaintenance StatusValue = "MAINTENANCE"
)

// SiteBcast carries the full site list a master periodically announces.
type SiteBcast struct {
	Sites []Site `json:"Sites"`
}

// StatusBcast announces one site's status change.
type StatusBcast struct {
	Site   Site        `json:"Site"`
	Status StatusValue `json:"Status"`
}
