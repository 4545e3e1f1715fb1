package models

// Result summarizes one filtering run.
type Result struct {
	BlocklistSize int      `json:"blocklistSize"`
	Kept          int      `json:"kept"`
	Removed       int      `json:"removed"`
	RemovedWords  []string `json:"removedWords"`
	Stats         struct {
		TimeElapsed int `json:"timeElapsedMs"`
	} `json:"stats"`
}

// Total returns the number of input lines processed.
func (r *Result) Total() int {
	return r.Kept + r.Removed
}
