// Package subreddit supplies the refinement pipeline's reference material:
// curated profiles for well-known subreddits, with a live sidebar scrape as
// fallback for everything else.
package subreddit

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/nabobery/google-adk-experiments/refine"
)

// Normalize canonicalizes a subreddit reference: "python", "/python" and
// "r/python" all resolve to "r/python". Matching on the bare name is
// case-insensitive.
func Normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	if rest, found := strings.CutPrefix(name, "r/"); found {
		name = rest
	}
	return "r/" + name
}

// bareName strips the r/ prefix for URL construction.
func bareName(key string) string {
	return strings.TrimPrefix(Normalize(key), "r/")
}

// Provider implements refine.ContextProvider over the curated profile table
// plus an optional live scraper. All lookup failures fold into an Unavailable
// result; Fetch never fails.
type Provider struct {
	profiles map[string]Profile
	scraper  Scraper
}

// Scraper fetches live community info for subreddits not in the profile table.
type Scraper interface {
	Scrape(ctx context.Context, name string) (Profile, error)
}

// NewProvider builds a provider over the given profiles. A nil scraper
// disables the live fallback.
func NewProvider(profiles map[string]Profile, scraper Scraper) *Provider {
	return &Provider{profiles: profiles, scraper: scraper}
}

func (p *Provider) Fetch(ctx context.Context, key string) refine.ContextResult {
	if strings.TrimSpace(key) == "" {
		return refine.Unavailable("no subreddit given")
	}
	normalized := Normalize(key)

	if profile, ok := p.profiles[normalized]; ok {
		return refine.ContextResult{
			Available: true,
			Guidance:  profile.RulesAndTone,
			Exemplars: profile.GoodExamples,
		}
	}

	if p.scraper == nil {
		return refine.Unavailable(fmt.Sprintf("no profile for %s", normalized))
	}

	profile, err := p.scraper.Scrape(ctx, bareName(key))
	if err != nil {
		log.Printf("subreddit: scrape %s failed: %v", normalized, err)
		return refine.Unavailable(fmt.Sprintf("scrape failed for %s", normalized))
	}
	if strings.TrimSpace(profile.RulesAndTone) == "" {
		return refine.Unavailable(fmt.Sprintf("no community info found for %s", normalized))
	}

	return refine.ContextResult{
		Available: true,
		Guidance:  profile.RulesAndTone,
		Exemplars: profile.GoodExamples,
	}
}
