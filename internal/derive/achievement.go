package derive

import (
	"github.com/wanderlist/wanderlist/internal/model"
)

type Tier string

const (
	TierBronze Tier = "bronze"
	TierSilver Tier = "silver"
	TierGold   Tier = "gold"
)

// Achievement pairs a fixed identity with two pure functions over the
// item snapshot: a predicate deciding whether it is earned, and a
// progress estimate for the locked state.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tier        Tier   `json:"tier"`
	Category    string `json:"category,omitempty"`

	predicate func(items []model.BucketItem) bool
	progress  func(items []model.BucketItem) int
}

// LockedAchievement annotates an unearned achievement with its
// progress percentage, always in [0, 99].
type LockedAchievement struct {
	Achievement
	Progress int `json:"progress"`
}

// catalog is the fixed, ordered achievement table. Order is part of
// the contract: earned and locked results preserve it.
var catalog = []Achievement{
	{
		ID:          "first-complete",
		Title:       "First Steps",
		Description: "Complete your first bucket list item",
		Tier:        TierBronze,
		predicate: func(items []model.BucketItem) bool {
			return countCompleted(items) >= 1
		},
		progress: func(items []model.BucketItem) int {
			for _, item := range items {
				if item.Status == model.StatusInProgress {
					return 50
				}
			}
			return 0
		},
	},
	{
		ID:          "five-complete",
		Title:       "Getting Started",
		Description: "Complete 5 bucket list items",
		Tier:        TierSilver,
		predicate: func(items []model.BucketItem) bool {
			return countCompleted(items) >= 5
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countCompleted(items), 5)
		},
	},
	{
		ID:          "ten-complete",
		Title:       "Achievement Hunter",
		Description: "Complete 10 bucket list items",
		Tier:        TierGold,
		predicate: func(items []model.BucketItem) bool {
			return countCompleted(items) >= 10
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countCompleted(items), 10)
		},
	},
	{
		ID:          "all-categories",
		Title:       "Explorer",
		Description: "Complete at least one item from each category",
		Tier:        TierGold,
		Category:    "Variety",
		predicate: func(items []model.BucketItem) bool {
			all, completed := categoryCoverage(items)
			return len(all) > 0 && len(completed) == len(all)
		},
		progress: func(items []model.BucketItem) int {
			all, completed := categoryCoverage(items)
			if len(all) == 0 {
				return 0
			}
			return ratioProgress(len(completed), len(all))
		},
	},
	{
		ID:          "high-priority",
		Title:       "Dream Chaser",
		Description: "Complete 3 high priority items",
		Tier:        TierSilver,
		Category:    "Priorities",
		predicate: func(items []model.BucketItem) bool {
			return countCompletedHighPriority(items) >= 3
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countCompletedHighPriority(items), 3)
		},
	},
	{
		ID:          "health-focus",
		Title:       "Wellness Warrior",
		Description: "Complete 3 items in the Health category",
		Tier:        TierSilver,
		Category:    "Health",
		predicate: func(items []model.BucketItem) bool {
			return countCompletedInCategories(items, "Health") >= 3
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countCompletedInCategories(items, "Health"), 3)
		},
	},
	{
		ID:          "learning",
		Title:       "Lifelong Learner",
		Description: "Complete 3 items in the Personal Growth or Skill categories",
		Tier:        TierSilver,
		Category:    "Learning",
		predicate: func(items []model.BucketItem) bool {
			return countCompletedInCategories(items, "Personal Growth", "Skill") >= 3
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countCompletedInCategories(items, "Personal Growth", "Skill"), 3)
		},
	},
	{
		ID:          "deadline-master",
		Title:       "On Time, Every Time",
		Description: "Complete 5 items before their target dates",
		Tier:        TierGold,
		Category:    "Time Management",
		predicate: func(items []model.BucketItem) bool {
			return countOnTime(items) >= 5
		},
		progress: func(items []model.BucketItem) int {
			return ratioProgress(countOnTime(items), 5)
		},
	},
	{
		ID:          "consistency",
		Title:       "Consistent Achiever",
		Description: "Complete at least one item every month for 3 consecutive months",
		Tier:        TierGold,
		Category:    "Consistency",
		predicate: func(items []model.BucketItem) bool {
			// Proxied by total completions; per-month streak tracking
			// would need completion history beyond the snapshot.
			return countCompleted(items) >= 10
		},
		progress: func(items []model.BucketItem) int {
			return 0
		},
	},
}

// Catalog returns the fixed achievement table in display order.
func Catalog() []Achievement {
	out := make([]Achievement, len(catalog))
	copy(out, catalog)
	return out
}

// Evaluate splits the catalog into earned and locked for the given
// snapshot. Earned keeps catalog order; locked achievements carry a
// progress percentage in [0, 99].
func Evaluate(items []model.BucketItem) (earned []Achievement, locked []LockedAchievement) {
	earned = []Achievement{}
	locked = []LockedAchievement{}
	for _, a := range catalog {
		if a.predicate(items) {
			earned = append(earned, a)
			continue
		}
		locked = append(locked, LockedAchievement{
			Achievement: a,
			Progress:    clampProgress(a.progress(items)),
		})
	}
	return earned, locked
}

// ratioProgress maps have/want onto [0, 99]. Earned states never reach
// this path, so 100 is clamped down to 99.
func ratioProgress(have, want int) int {
	if want <= 0 {
		return 0
	}
	return clampProgress(have * 100 / want)
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 99 {
		return 99
	}
	return p
}

func countCompleted(items []model.BucketItem) int {
	n := 0
	for _, item := range items {
		if item.IsCompleted() {
			n++
		}
	}
	return n
}

func countCompletedHighPriority(items []model.BucketItem) int {
	n := 0
	for _, item := range items {
		if item.IsCompleted() && item.Priority == model.PriorityHigh {
			n++
		}
	}
	return n
}

func countCompletedInCategories(items []model.BucketItem, categories ...string) int {
	n := 0
	for _, item := range items {
		if !item.IsCompleted() {
			continue
		}
		for _, c := range categories {
			if item.Category == c {
				n++
				break
			}
		}
	}
	return n
}

// countOnTime counts completed items whose completion date falls on or
// before their target date. Items missing either date, or carrying a
// malformed one, do not qualify.
func countOnTime(items []model.BucketItem) int {
	n := 0
	for _, item := range items {
		if !item.IsCompleted() {
			continue
		}
		target, ok := parseDate(item.TargetDate)
		if !ok {
			continue
		}
		completed, ok := parseDate(item.CompletionDate)
		if !ok {
			continue
		}
		if !completed.After(target) {
			n++
		}
	}
	return n
}

// categoryCoverage returns the distinct non-empty categories present
// across all items and across completed items.
func categoryCoverage(items []model.BucketItem) (all, completed map[string]struct{}) {
	all = map[string]struct{}{}
	completed = map[string]struct{}{}
	for _, item := range items {
		if item.Category == "" {
			continue
		}
		all[item.Category] = struct{}{}
		if item.IsCompleted() {
			completed[item.Category] = struct{}{}
		}
	}
	return all, completed
}
