package news

import (
	"context"

	"github.com/nabobery/google-adk-experiments/core"
)

// ScrapeInput are the parameters for the article scraping tool.
type ScrapeInput struct {
	URL       string `json:"url" jsonschema:"required" jsonschema_description:"URL of the article to scrape"`
	MaxLength int    `json:"max_length,omitempty" jsonschema_description:"Maximum length of content to extract, default 3000"`
}

// AnalyzeInput are the parameters for the content analysis tool.
type AnalyzeInput struct {
	Content      string `json:"content" jsonschema:"required" jsonschema_description:"Article content to analyze"`
	Title        string `json:"title,omitempty" jsonschema_description:"Article title for context"`
	AnalysisType string `json:"analysis_type,omitempty" jsonschema_description:"Type of analysis: summary, sentiment, credibility, bias, or all (default all)"`
}

// HeadlinesInput has no parameters; the tool always reads the front page.
type HeadlinesInput struct {
}

func scrapeTool(ctx context.Context, input ScrapeInput) (Article, error) {
	return ScrapeArticle(ctx, input.URL, input.MaxLength)
}

func analyzeTool(ctx context.Context, input AnalyzeInput) (Analysis, error) {
	return Analyze(input.Content, input.Title, AnalysisKind(input.AnalysisType)), nil
}

func headlinesTool(ctx context.Context, input HeadlinesInput) ([]Headline, error) {
	return LatestHeadlines(ctx)
}

// RegisterTools adds the news research tools to the registry.
func RegisterTools(registry *core.ToolRegistry) error {
	if err := registry.RegisterFunc("scrape_article", "extract and clean content from a web article URL", scrapeTool); err != nil {
		return err
	}
	if err := registry.RegisterFunc("analyze_content", "analyze article content for sentiment, credibility, bias and key points", analyzeTool); err != nil {
		return err
	}
	return registry.RegisterFunc("get_latest_news", "get latest news headlines", headlinesTool)
}
