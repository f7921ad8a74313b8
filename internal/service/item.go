package service

import (
	"fmt"
	"time"

	"github.com/wanderlist/wanderlist/internal/derive"
	"github.com/wanderlist/wanderlist/internal/model"
	"github.com/wanderlist/wanderlist/internal/repository"
	"github.com/wanderlist/wanderlist/internal/validation"
)

// ItemInput carries the caller-editable fields of a bucket list item.
type ItemInput struct {
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Status         string        `json:"status"`
	Category       string        `json:"category"`
	Priority       string        `json:"priority"`
	Tags           model.TagList `json:"tags"`
	TargetDate     *string       `json:"targetDate"`
	CompletionDate *string       `json:"completionDate"`
	ImageURL       string        `json:"imageUrl"`
}

// ItemPatch is a partial update; nil fields are left unchanged.
type ItemPatch struct {
	Title          *string        `json:"title"`
	Description    *string        `json:"description"`
	Status         *string        `json:"status"`
	Category       *string        `json:"category"`
	Priority       *string        `json:"priority"`
	Tags           *model.TagList `json:"tags"`
	TargetDate     *string        `json:"targetDate"`
	CompletionDate *string        `json:"completionDate"`
	ImageURL       *string        `json:"imageUrl"`
}

type BucketListService struct {
	repo          repository.ItemRepository
	dismissalRepo repository.DismissalRepository

	// now is swappable so derived views are testable at a fixed
	// instant.
	now func() time.Time
}

func NewBucketListService(repo repository.ItemRepository, dismissalRepo repository.DismissalRepository) *BucketListService {
	return &BucketListService{
		repo:          repo,
		dismissalRepo: dismissalRepo,
		now:           time.Now,
	}
}

func (s *BucketListService) Create(userID string, input ItemInput) (*model.BucketItem, error) {
	err := validation.ValidateItemInput(input.Title, input.Description, input.Status, input.Priority, input.TargetDate, input.CompletionDate)
	if err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = model.StatusNotStarted
	}

	item := &model.BucketItem{
		UserID:         userID,
		Title:          input.Title,
		Description:    input.Description,
		Status:         status,
		Category:       input.Category,
		Priority:       input.Priority,
		Tags:           input.Tags,
		TargetDate:     input.TargetDate,
		CompletionDate: input.CompletionDate,
		ImageURL:       input.ImageURL,
	}

	s.applyCompletionDateRule(item, "")

	err = s.repo.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

func (s *BucketListService) ByID(userID string, itemID int64) (*model.BucketItem, error) {
	return s.repo.ByID(userID, itemID)
}

// Snapshot returns the user's full item set; every derived view is
// computed from it.
func (s *BucketListService) Snapshot(userID string) ([]model.BucketItem, error) {
	return s.repo.Items(userID)
}

func (s *BucketListService) Update(userID string, itemID int64, patch ItemPatch) (*model.BucketItem, error) {
	item, err := s.repo.ByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	previousStatus := item.Status

	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Priority != nil {
		item.Priority = *patch.Priority
	}
	if patch.Tags != nil {
		item.Tags = *patch.Tags
	}
	if patch.TargetDate != nil {
		item.TargetDate = emptyToNil(patch.TargetDate)
	}
	if patch.CompletionDate != nil {
		item.CompletionDate = emptyToNil(patch.CompletionDate)
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}

	err = validation.ValidateItemInput(item.Title, item.Description, item.Status, item.Priority, item.TargetDate, item.CompletionDate)
	if err != nil {
		return nil, err
	}

	s.applyCompletionDateRule(item, previousStatus)

	err = s.repo.Update(item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// applyCompletionDateRule keeps the completion date consistent with
// the status: entering Completed stamps today when no date was given,
// and leaving Completed clears it.
func (s *BucketListService) applyCompletionDateRule(item *model.BucketItem, previousStatus string) {
	switch {
	case item.IsCompleted() && previousStatus != model.StatusCompleted:
		if item.CompletionDate == nil || *item.CompletionDate == "" {
			today := s.now().Format(model.DateLayout)
			item.CompletionDate = &today
		}
	case !item.IsCompleted() && previousStatus == model.StatusCompleted:
		item.CompletionDate = nil
	}
}

func (s *BucketListService) Delete(userID string, itemID int64) error {
	_, err := s.repo.ByID(userID, itemID)
	if err != nil {
		return err
	}

	return s.repo.Delete(userID, itemID)
}

func (s *BucketListService) SetImage(userID string, itemID int64, imageURL string) (*model.BucketItem, error) {
	item, err := s.repo.ByID(userID, itemID)
	if err != nil {
		return nil, err
	}

	item.ImageURL = imageURL
	err = s.repo.Update(item)
	if err != nil {
		return nil, err
	}

	return item, nil
}

// ListPage runs the filter/sort/paginate pipeline over the user's
// snapshot.
func (s *BucketListService) ListPage(userID string, query derive.ListQuery) (derive.ListPage, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return derive.ListPage{}, err
	}

	return derive.ApplyQuery(items, query, s.now())
}

func (s *BucketListService) Achievements(userID string) ([]derive.Achievement, []derive.LockedAchievement, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, nil, err
	}

	earned, locked := derive.Evaluate(items)
	return earned, locked, nil
}

func (s *BucketListService) Stats(userID string) (derive.Summary, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return derive.Summary{}, err
	}

	return derive.Summarize(items, s.now()), nil
}

func (s *BucketListService) Reminders(userID string) ([]derive.Reminder, error) {
	items, err := s.repo.Items(userID)
	if err != nil {
		return nil, err
	}

	ids, err := s.dismissalRepo.DismissedItemIDs(userID)
	if err != nil {
		return nil, err
	}

	return derive.Reminders(items, derive.NewDismissedSet(ids), s.now()), nil
}

// DismissReminder hides one item's reminder until the dismissals are
// reset. The item must belong to the user.
func (s *BucketListService) DismissReminder(userID string, itemID int64) error {
	_, err := s.repo.ByID(userID, itemID)
	if err != nil {
		return err
	}

	return s.dismissalRepo.Dismiss(userID, itemID)
}

func (s *BucketListService) ResetDismissedReminders(userID string) error {
	return s.dismissalRepo.Reset(userID)
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
