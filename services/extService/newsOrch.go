package extService

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/gofeed"
	"gorm.io/gorm"

	"propsTracker/models"
	"propsTracker/models/external"
	"propsTracker/services/common"
)

// DefaultFeeds maps short feed names to general-news RSS sources.
var DefaultFeeds = map[string]string{
	"bbc":        "http://feeds.bbci.co.uk/news/rss.xml",
	"cnn":        "http://rss.cnn.com/rss/cnn_topstories.rss",
	"nytimes":    "https://rss.nytimes.com/services/xml/rss/nyt/HomePage.xml",
	"guardian":   "https://www.theguardian.com/world/rss",
	"aljazeera":  "https://www.aljazeera.com/xml/rss/all.xml",
	"techcrunch": "https://techcrunch.com/feed/",
	"hackernews": "https://hnrss.org/frontpage",
}

// GetSportNews fetches recent headlines for a sport from ESPN.
func GetSportNews(db *gorm.DB, sport string, limit int) ([]models.NewsItem, error) {
	path, err := SportPath(sport)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	newsUrl := fmt.Sprintf("%s/%s/news", espnBaseUrl, path)
	resp, err := common.ESPNWrapper(newsUrl)
	if err != nil {
		common.LogError(db, "extService.GetSportNews", err)
		return nil, err
	}
	defer resp.Body.Close()

	var news external.ESPN_News
	err = json.NewDecoder(resp.Body).Decode(&news)
	if err != nil {
		common.LogError(db, "extService.GetSportNews", err)
		return nil, err
	}

	var items []models.NewsItem
	for _, article := range news.Articles {
		if len(items) >= limit {
			break
		}
		items = append(items, models.NewsItem{
			Title:       article.Headline,
			Description: article.Description,
			Link:        article.Links.Web.Href,
			Published:   article.Published,
			Source:      "espn",
		})
	}
	return items, nil
}

// GetFeedNews fetches and parses one RSS feed, by short name or raw URL.
func GetFeedNews(db *gorm.DB, feed string, limit int) ([]models.NewsItem, error) {
	feedUrl, ok := DefaultFeeds[feed]
	if !ok {
		feedUrl = feed
	}
	if limit <= 0 {
		limit = 10
	}

	parser := gofeed.NewParser()
	parsed, err := parser.ParseURL(feedUrl)
	if err != nil {
		common.LogError(db, "extService.GetFeedNews", err)
		return nil, err
	}

	var items []models.NewsItem
	for _, entry := range parsed.Items {
		if len(items) >= limit {
			break
		}

		published := entry.Published
		if published == "" {
			published = entry.Updated
		}

		items = append(items, models.NewsItem{
			Title:       entry.Title,
			Description: entry.Description,
			Link:        entry.Link,
			Published:   published,
			Source:      parsed.Title,
		})
	}
	return items, nil
}
