package service

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wanderlist/wanderlist/internal/markdown"
	"github.com/wanderlist/wanderlist/internal/model"
)

// InspirationService serves curated goal ideas and quotes from
// markdown files in the content directory. Each file carries its idea
// list in frontmatter; the body is free-form introduction text.
type InspirationService struct {
	parser      *markdown.Parser
	contentPath string
}

func NewInspirationService(contentPath string) *InspirationService {
	return &InspirationService{
		parser:      markdown.NewParser(),
		contentPath: contentPath,
	}
}

func (s *InspirationService) Sets() ([]*model.InspirationSet, error) {
	pattern := filepath.Join(s.contentPath, "inspiration", "*.md")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	var sets []*model.InspirationSet
	for _, file := range files {
		slug := strings.TrimSuffix(filepath.Base(file), ".md")
		if slug == "quotes" {
			continue
		}
		set, err := s.Set(slug)
		if err != nil {
			continue
		}
		sets = append(sets, set)
	}

	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Title < sets[j].Title
	})

	return sets, nil
}

func (s *InspirationService) Set(slug string) (*model.InspirationSet, error) {
	path := filepath.Join(s.contentPath, "inspiration", slug+".md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inspiration set not found: %s", slug)
	}

	meta := s.parser.ExtractFrontmatter(content)

	set := &model.InspirationSet{Slug: slug}

	title, ok := meta["title"].(string)
	if ok {
		set.Title = title
	}

	category, ok := meta["category"].(string)
	if ok {
		set.Category = category
	}

	ideas, ok := meta["ideas"].([]any)
	if ok {
		for _, raw := range ideas {
			entry, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			idea := model.InspirationIdea{Category: set.Category}
			if v, ok := entry["title"].(string); ok {
				idea.Title = v
			}
			if v, ok := entry["category"].(string); ok {
				idea.Category = v
			}
			if v, ok := entry["difficulty"].(string); ok {
				idea.Difficulty = v
			}
			if idea.Title != "" {
				set.Ideas = append(set.Ideas, idea)
			}
		}
	}

	return set, nil
}

func (s *InspirationService) Quotes() ([]model.Quote, error) {
	path := filepath.Join(s.contentPath, "inspiration", "quotes.md")
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("quotes file not found")
	}

	meta := s.parser.ExtractFrontmatter(content)

	var quotes []model.Quote
	raw, ok := meta["quotes"].([]any)
	if ok {
		for _, item := range raw {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			var q model.Quote
			if v, ok := entry["quote"].(string); ok {
				q.Quote = v
			}
			if v, ok := entry["author"].(string); ok {
				q.Author = v
			}
			if q.Quote != "" {
				quotes = append(quotes, q)
			}
		}
	}

	return quotes, nil
}

// RandomQuote picks one quote for the dashboard header.
func (s *InspirationService) RandomQuote() (model.Quote, error) {
	quotes, err := s.Quotes()
	if err != nil {
		return model.Quote{}, err
	}
	if len(quotes) == 0 {
		return model.Quote{}, fmt.Errorf("no quotes available")
	}
	return quotes[rand.Intn(len(quotes))], nil
}
