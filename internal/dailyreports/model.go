package dailyreports

import "time"

// Report is a site engineer's daily progress report, optionally tied to a
// BOQ line.
type Report struct {
	ID               string    `json:"id"`
	ProjectID        string    `json:"projectId"`
	ReportDate       string    `json:"reportDate"`
	SiteEngineer     string    `json:"siteEngineer"`
	WorkDescription  string    `json:"workDescription"`
	QuantityExecuted float64   `json:"quantityExecuted"`
	Unit             string    `json:"unit"`
	BOQItemID        string    `json:"boqItemId,omitempty"`
	Weather          string    `json:"weather,omitempty"`
	NoOfWorkers      int       `json:"noOfWorkers,omitempty"`
	Remarks          string    `json:"remarks,omitempty"`
	Photos           []string  `json:"photos,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (r Report) RecordID() string { return r.ID }

type CreateInput struct {
	ProjectID        string   `json:"projectId" binding:"required"`
	ReportDate       string   `json:"reportDate"`
	SiteEngineer     string   `json:"siteEngineer"`
	WorkDescription  string   `json:"workDescription"`
	QuantityExecuted float64  `json:"quantityExecuted"`
	Unit             string   `json:"unit"`
	BOQItemID        string   `json:"boqItemId"`
	Weather          string   `json:"weather"`
	NoOfWorkers      int      `json:"noOfWorkers"`
	Remarks          string   `json:"remarks"`
	Photos           []string `json:"photos"`
}
