package dto

type BusinessResponse struct {
	Name     string   `json:"name"`
	Location string   `json:"location"`
	Type     string   `json:"type"`
	Phone    string   `json:"phone,omitempty"`
	Services []string `json:"services"`
	ChatLink string   `json:"chat_link,omitempty"`
	MapLink  string   `json:"map_link"`
}

type PublishCalendarResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}
