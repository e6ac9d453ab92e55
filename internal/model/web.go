package model

// WebResponse is the envelope every endpoint answers with. Exactly one of
// Data or Errors is set; Paging accompanies search results only.
type WebResponse struct {
	Data   interface{} `json:"data,omitempty"`
	Errors string      `json:"errors,omitempty"`
	Paging *Paging     `json:"paging,omitempty"`
}

type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}
