package request

type SubmitDayRequest struct {
	Day   string `json:"day"`
	Force bool   `json:"force"`
}
