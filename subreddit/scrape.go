package subreddit

import (
	"context"
	"fmt"
	"strings"

	"github.com/gocolly/colly/v2"
)

const maxScrapedExamples = 5

// SidebarScraper reads a subreddit's sidebar description and top post titles
// from old.reddit.com, which still serves server-rendered HTML.
type SidebarScraper struct {
	// BaseURL overrides the reddit host, used by tests.
	BaseURL string
}

func (s *SidebarScraper) Scrape(ctx context.Context, name string) (Profile, error) {
	base := s.BaseURL
	if base == "" {
		base = "https://old.reddit.com"
	}

	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}

	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
	)

	var (
		sidebar   []string
		examples  []string
		scrapeErr error
	)

	c.OnHTML("div.side .usertext-body .md p", func(e *colly.HTMLElement) {
		text := strings.TrimSpace(e.Text)
		if text != "" {
			sidebar = append(sidebar, text)
		}
	})

	c.OnHTML("#siteTable .thing a.title", func(e *colly.HTMLElement) {
		if len(examples) >= maxScrapedExamples {
			return
		}
		title := strings.TrimSpace(e.Text)
		if title != "" {
			examples = append(examples, "Title: "+title)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		scrapeErr = err
	})

	if err := c.Visit(fmt.Sprintf("%s/r/%s/", base, name)); err != nil {
		return Profile{}, err
	}
	c.Wait()
	if scrapeErr != nil {
		return Profile{}, scrapeErr
	}

	return Profile{
		RulesAndTone: strings.Join(sidebar, "\n"),
		GoodExamples: examples,
	}, nil
}
