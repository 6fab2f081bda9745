package models

import "time"

// NewsArticle represents one search result mapped to the stable response
// schema. Fields the provider omits stay empty strings.
type NewsArticle struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
	Source        string `json:"source"`
}

// NewsResponse is the /news response envelope
type NewsResponse struct {
	Company       string        `json:"company"`
	Articles      []NewsArticle `json:"articles"`
	TotalArticles int           `json:"total_articles"`
	SearchQuery   string        `json:"search_query"`
	LastUpdated   time.Time     `json:"last_updated"`
}
