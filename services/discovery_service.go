package services

import (
	"sort"
	"strings"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/repository"
)

// DiscoveryService serves the public read paths: feed, keyword search,
// popularity ranking and category leaderboards. Everything is computed on
// demand over the approved, not-deleted subset; nothing here mutates state.
type DiscoveryService struct {
	Repos *repository.Repos
}

func NewDiscoveryService(repos *repository.Repos) *DiscoveryService {
	return &DiscoveryService{Repos: repos}
}

// CategoryCount pairs a category with its approved-tour count for the
// top-categories leaderboard.
type CategoryCount struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
}

// Feed returns the public feed: approved, not-deleted tours, newest first.
func (s *DiscoveryService) Feed() ([]models.Tour, error) {
	return s.public()
}

// Search matches keyword case-insensitively against tour name, description,
// category name and publisher first/last name, restricted to the public feed
// predicate. Result order follows the feed order.
func (s *DiscoveryService) Search(keyword string) ([]models.Tour, error) {
	if keyword == "" {
		return nil, apperrors.Validation("keyword is required")
	}
	tours, err := s.public()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(keyword)
	matched := []models.Tour{}
	for _, tour := range tours {
		if matchesKeyword(tour, needle) {
			matched = append(matched, tour)
		}
	}
	return matched, nil
}

func matchesKeyword(tour models.Tour, needle string) bool {
	for _, field := range []string{
		tour.Name,
		tour.Description,
		tour.Category.Name,
		tour.Publisher.FirstName,
		tour.Publisher.LastName,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// Popular ranks the public subset by engagement volume, comment count first
// and rating count as tie-break, and returns the top three. Volume rather
// than average score avoids a single 5-star rating outranking a tour with
// hundreds of reviews.
func (s *DiscoveryService) Popular() ([]models.Tour, error) {
	tours, err := s.public()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tours, func(i, j int) bool {
		if len(tours[i].Comments) != len(tours[j].Comments) {
			return len(tours[i].Comments) > len(tours[j].Comments)
		}
		return len(tours[i].Ratings) > len(tours[j].Ratings)
	})

	if len(tours) > 3 {
		tours = tours[:3]
	}
	return tours, nil
}

// TopCategories groups approved tours by category and returns the three
// biggest, count descending. Categories without approved tours never appear.
func (s *DiscoveryService) TopCategories() ([]CategoryCount, error) {
	tours, err := s.public()
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]*CategoryCount)
	order := []uint{}
	for _, tour := range tours {
		if tour.Category.ID == 0 {
			// Category row removed since the tour was published.
			continue
		}
		entry, ok := counts[tour.CategoryID]
		if !ok {
			entry = &CategoryCount{Category: tour.Category}
			counts[tour.CategoryID] = entry
			order = append(order, tour.CategoryID)
		}
		entry.Count++
	}

	ranked := make([]CategoryCount, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *counts[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}
	return ranked, nil
}

func (s *DiscoveryService) ListByPublisher(userID uint) ([]models.Tour, error) {
	tours, err := s.Repos.Tours.ListByPublisher(userID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tours", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *DiscoveryService) ListByCategory(categoryID uint) ([]models.Tour, error) {
	tours, err := s.Repos.Tours.ListByCategory(categoryID)
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tours", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}

func (s *DiscoveryService) public() ([]models.Tour, error) {
	tours, err := s.Repos.Tours.ListPublic()
	if err != nil {
		return nil, apperrors.Storage("failed to fetch tours", err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return tours, nil
}
