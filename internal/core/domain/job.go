package domain

// Job is a single posting in the catalog. The catalog is read-only in this
// service; postings are loaded out of band.
type Job struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Org   string `json:"org"`
	Link  string `json:"link"`
}
