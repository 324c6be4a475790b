package subreddit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is curated knowledge about one subreddit: a rules/tone summary and a
// few exemplar posts that did well there.
type Profile struct {
	RulesAndTone string   `yaml:"rules_and_tone"`
	GoodExamples []string `yaml:"good_examples"`
}

// defaultProfilesYAML ships curated profiles for a few common subreddits so
// the pipeline works without a profiles file or network access.
const defaultProfilesYAML = `# curated subreddit profiles
r/python:
  rules_and_tone: >-
    Technical programming discussions about Python. Posts should be
    informative, well-formatted with code blocks, and relate to Python
    programming. Avoid beginner questions that belong in r/learnpython.
    Tone is professional and helpful.
  good_examples:
    - |-
      Title: New Python 3.12 Feature: PEP 692 - Using TypedDict for kwargs
      Body: The new kwargs syntax in Python 3.12 allows...
    - |-
      Title: Performance comparison: List comprehensions vs Generator expressions
      Body: I benchmarked different approaches for data processing...
r/MachineLearning:
  rules_and_tone: >-
    Research-focused ML discussions. Posts should cite papers, include
    technical details, and contribute meaningfully to ML discourse. Avoid
    basic questions. Tone is academic and rigorous.
  good_examples:
    - |-
      Title: [R] New SOTA on ImageNet with 0.1% fewer parameters
      Body: Paper: arxiv.org/abs/... Our method achieves...
    - |-
      Title: [D] Why attention mechanisms work better than RNNs for sequence modeling
      Body: After implementing both approaches, I noticed...
r/webdev:
  rules_and_tone: >-
    Web development discussions. Posts should be practical, include code
    examples or live demos when relevant. Mix of questions, showcases, and
    discussions. Tone is casual but informative.
  good_examples:
    - |-
      Title: Built a CSS Grid generator tool - feedback welcome!
      Body: Live demo: mydemo.com After struggling with grid layouts...
    - |-
      Title: Should I use React or Vue for my next project?
      Body: Currently deciding between frameworks for a medium-sized SaaS...
`

// LoadProfiles reads curated profiles from path, falling back to the embedded
// defaults when path is empty or the file does not exist.
func LoadProfiles(path string) (map[string]Profile, error) {
	data := []byte(defaultProfilesYAML)
	if path != "" {
		b, err := os.ReadFile(path)
		if err == nil {
			data = b
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("subreddit: read profiles: %w", err)
		}
	}

	profiles := make(map[string]Profile)
	if err := yaml.Unmarshal(data, &profiles); err != nil {
		return nil, fmt.Errorf("subreddit: parse profiles: %w", err)
	}

	normalized := make(map[string]Profile, len(profiles))
	for name, p := range profiles {
		normalized[Normalize(name)] = p
	}
	return normalized, nil
}
