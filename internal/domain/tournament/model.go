package tournament

// Tournament groups fixtures and teams for one competition.
type Tournament struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Season    string `json:"season"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
	BannerURL string `json:"bannerUrl"`
}
