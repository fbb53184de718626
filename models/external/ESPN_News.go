package external

type ESPN_News struct {
	Header   string         `json:"header"`
	Articles []ESPN_Article `json:"articles"`
}

type ESPN_Article struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Type        string `json:"type"`
	Links       struct {
		Web struct {
			Href string `json:"href"`
		} `json:"web"`
	} `json:"links"`
}
