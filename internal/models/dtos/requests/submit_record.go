package requests

import "strconv"

// SubmitRecordRequest is the JSON body of a raider submission.
// Impressions is a pointer so an omitted count can be told apart from zero.
type SubmitRecordRequest struct {
	PostURL     string `json:"postUrl"`
	Impressions *int   `json:"impressions"`
}

// RawImpressions renders the count the way the submission form posts it.
func (r SubmitRecordRequest) RawImpressions() string {
	if r.Impressions == nil {
		return ""
	}
	return strconv.Itoa(*r.Impressions)
}
