// Package news provides the research assistant's tools: article scraping,
// headline listing and heuristic content analysis.
package news

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	defaultMaxContentLength = 3000
	userAgent               = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Article is the cleaned result of scraping one news page.
type Article struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Summary     string   `json:"summary"`
	Authors     []string `json:"authors,omitempty"`
	PublishDate string   `json:"publish_date,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	TopImage    string   `json:"top_image,omitempty"`
}

var titleSelectors = []string{
	"h1",
	".entry-title",
	".post-title",
	".article-title",
	`[data-testid="headline"]`,
	"title",
}

var contentSelectors = []string{
	"article .entry-content",
	"article .post-content",
	".article-body",
	".post-body",
	".content-body",
	`[data-testid="article-body"]`,
	".story-body",
	"article",
	".entry-content",
	".post-content",
	"main",
	".content",
}

var authorSelectors = []string{
	`[rel="author"]`,
	".author",
	".byline",
	`[data-testid="author"]`,
	".post-author",
}

var dateSelectors = []string{
	"time[datetime]",
	".publish-date",
	".post-date",
	`[data-testid="timestamp"]`,
}

var imageSelectors = []string{
	`meta[property="og:image"]`,
	`meta[name="twitter:image"]`,
	".featured-image img",
	".post-thumbnail img",
}

// ScrapeArticle fetches a page and extracts title, body text and metadata
// using ordered selector fallbacks. maxLength <= 0 picks the default cap.
func ScrapeArticle(ctx context.Context, url string, maxLength int) (Article, error) {
	if maxLength <= 0 {
		maxLength = defaultMaxContentLength
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Article{}, fmt.Errorf("news: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return Article{}, fmt.Errorf("news: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Article{}, fmt.Errorf("news: fetch %s: status %d", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return Article{}, fmt.Errorf("news: parse %s: %w", url, err)
	}

	doc.Find("script, style, nav, header, footer, aside").Remove()

	content := CleanContent(extractContent(doc))
	if len(content) > maxLength {
		content = content[:maxLength]
	}

	summary := content
	if len(summary) > 300 {
		summary = summary[:300]
	}

	return Article{
		URL:         url,
		Title:       extractTitle(doc),
		Content:     content,
		Summary:     summary,
		Authors:     extractAuthors(doc),
		PublishDate: extractPublishDate(doc),
		Keywords:    extractKeywords(doc),
		TopImage:    extractTopImage(doc),
	}, nil
}

func extractTitle(doc *goquery.Document) string {
	for _, selector := range titleSelectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return "No title found"
}

func extractContent(doc *goquery.Document) string {
	for _, selector := range contentSelectors {
		var parts []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if text := strings.TrimSpace(s.Text()); text != "" {
				parts = append(parts, text)
			}
		})
		content := strings.Join(parts, " ")
		// Require substantial content before trusting a selector.
		if len(strings.Fields(content)) > 50 {
			return content
		}
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, " ")
}

func extractAuthors(doc *goquery.Document) []string {
	var authors []string
	seen := make(map[string]bool)
	for _, selector := range authorSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			author := strings.TrimSpace(s.Text())
			if author != "" && !seen[author] {
				seen[author] = true
				authors = append(authors, author)
			}
		})
	}
	if len(authors) > 3 {
		authors = authors[:3]
	}
	return authors
}

func extractPublishDate(doc *goquery.Document) string {
	for _, selector := range dateSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if dt, ok := sel.Attr("datetime"); ok && dt != "" {
			return dt
		}
		if text := strings.TrimSpace(sel.Text()); text != "" {
			return text
		}
	}
	return ""
}

func extractKeywords(doc *goquery.Document) []string {
	var keywords []string
	if content, ok := doc.Find(`meta[name="keywords"]`).Attr("content"); ok {
		for _, kw := range strings.Split(content, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				keywords = append(keywords, kw)
			}
		}
	}
	doc.Find(`meta[property="article:tag"]`).Each(func(_ int, s *goquery.Selection) {
		if content, ok := s.Attr("content"); ok && strings.TrimSpace(content) != "" {
			keywords = append(keywords, strings.TrimSpace(content))
		}
	})
	if len(keywords) > 10 {
		keywords = keywords[:10]
	}
	return keywords
}

func extractTopImage(doc *goquery.Document) string {
	for _, selector := range imageSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if content, ok := sel.Attr("content"); ok && content != "" {
			return content
		}
		if src, ok := sel.Attr("src"); ok && src != "" {
			return src
		}
	}
	return ""
}

var whitespaceRe = regexp.MustCompile(`\s+`)

var unwantedPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Subscribe to.*?newsletter`),
	regexp.MustCompile(`(?i)Follow us on.*?social media`),
	regexp.MustCompile(`(?i)Sign up.*?updates`),
	regexp.MustCompile(`(?i)Advertisement`),
	regexp.MustCompile(`(?i)Related Articles`),
	regexp.MustCompile(`(?i)Read More:`),
	regexp.MustCompile(`(?i)Share this article`),
	regexp.MustCompile(`(?i)Download our app`),
	regexp.MustCompile(`(?i)Enable notifications`),
	regexp.MustCompile(`(?i)Accept cookies`),
	regexp.MustCompile(`(?i)Privacy Policy`),
	regexp.MustCompile(`(?i)Terms of Service`),
	regexp.MustCompile(`(?i)Comments \(\d+\)`),
	regexp.MustCompile(`(?i)Share on Facebook`),
	regexp.MustCompile(`(?i)Share on Twitter`),
	regexp.MustCompile(`(?i)Copy link`),
	regexp.MustCompile(`(?i)Copyright \d{4}.*`),
	regexp.MustCompile(`©.*`),
	regexp.MustCompile(`(?i)All rights reserved.*`),
}

// CleanContent strips boilerplate and collapses whitespace in scraped text.
func CleanContent(content string) string {
	if content == "" {
		return ""
	}
	content = whitespaceRe.ReplaceAllString(content, " ")
	for _, re := range unwantedPatterns {
		content = re.ReplaceAllString(content, "")
	}
	return strings.TrimSpace(content)
}
