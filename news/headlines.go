package news

import (
	"context"
	"strings"

	"github.com/gocolly/colly/v2"
)

// Headline is one entry from a news front page listing.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	NewsDate    string `json:"news_date"`
	ImageURL    string `json:"image_url"`
	NewsURL     string `json:"news_url"`
}

const headlineSource = "https://www.adaderana.lk/hot-news/"

// LatestHeadlines scrapes the latest headline listing.
func LatestHeadlines(ctx context.Context) ([]Headline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c := colly.NewCollector(
		colly.AllowedDomains("www.adaderana.lk"),
	)

	var headlines []Headline
	var scrapeErr error

	c.OnHTML(".news-story", func(e *colly.HTMLElement) {
		title := cleanHeadlineTitle(e.ChildText("h2.hidden-xs a"))
		description := e.ChildText("p")

		newsDate := ""
		if parts := strings.Split(e.ChildText(".comments span"), "|"); len(parts) > 1 {
			newsDate = strings.TrimSpace(parts[1])
		}

		headlines = append(headlines, Headline{
			Title:       title,
			Description: description,
			NewsDate:    newsDate,
			ImageURL:    e.ChildAttr(".thumb-image a img", "src"),
			NewsURL:     e.ChildAttr("h2.hidden-xs a", "href"),
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(headlineSource); err != nil {
		return nil, err
	}
	c.Wait()
	if scrapeErr != nil {
		return nil, scrapeErr
	}
	return headlines, nil
}

// cleanHeadlineTitle removes duplicate trailing parts in the title
func cleanHeadlineTitle(title string) string {
	title = strings.TrimSpace(title)
	words := strings.Fields(title)
	for i := 1; i <= len(words)/2; i++ {
		if strings.Join(words[len(words)-i:], " ") == strings.Join(words[len(words)-2*i:len(words)-i], " ") {
			return strings.Join(words[:len(words)-i], " ")
		}
	}
	return title
}
