package report

type RunResponse struct {
	Subject     string `json:"subject"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Employees   int    `json:"employees"`
	Recipients  int    `json:"recipients"`
	Sent        bool   `json:"sent"`
}

type PreviewResponse struct {
	Subject      string `json:"subject"`
	WindowStart  string `json:"window_start"`
	WindowEnd    string `json:"window_end"`
	BusinessDays int    `json:"business_days"`
	Employees    int    `json:"employees"`
	HTML         string `json:"html"`
}

type PreviewQuery struct {
	DaysRange int `form:"days_range"`
}
