package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roamly/api-go/apperrors"
	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/policy"
	"github.com/roamly/api-go/services"
)

func actorFor(user models.User) policy.Actor {
	return policy.Actor{UserID: user.ID, Role: user.Role}
}

func TestCreateTour(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	category := store.addCategory("Hiking")

	t.Run("valid input starts pending", func(t *testing.T) {
		tour, err := svc.Create(actorFor(publisher), services.CreateTourInput{
			Name:        "Rila lakes trek",
			Description: "Seven lakes in one day",
			Location:    "Rila, Bulgaria",
			CategoryID:  category.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.TourStatusPending, tour.Status)
		assert.False(t, tour.IsDeleted)
		assert.Equal(t, publisher.ID, tour.PublisherID)
		assert.Equal(t, "Hiking", tour.Category.Name)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := svc.Create(actorFor(publisher), services.CreateTourInput{
			Name:       "No description",
			Location:   "Nowhere",
			CategoryID: category.ID,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
	})

	t.Run("unknown category rejected", func(t *testing.T) {
		_, err := svc.Create(actorFor(publisher), services.CreateTourInput{
			Name:        "Ghost category",
			Description: "d",
			Location:    "l",
			CategoryID:  999,
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestUpdateTourResetsStatus(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	category := store.addCategory("Hiking")
	tour := store.addTour(publisher, category, "Old name", models.TourStatusApproved, false)

	newName := "New name"
	updated, err := svc.Update(actorFor(publisher), tour.ID, services.UpdateTourCommand{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)
	// edits always go back through review
	assert.Equal(t, models.TourStatusPending, updated.Status)
	// untouched fields survive
	assert.Equal(t, tour.Description, updated.Description)
}

func TestUpdateTourOwnership(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	stranger := store.addUser("Ivan", "Georgiev", models.RoleUser)
	category := store.addCategory("Hiking")
	tour := store.addTour(publisher, category, "Guarded", models.TourStatusApproved, false)

	name := "Hijacked"
	_, err := svc.Update(actorFor(stranger), tour.ID, services.UpdateTourCommand{Name: &name})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	_, err = svc.Update(actorFor(publisher), 4242, services.UpdateTourCommand{Name: &name})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
}

func TestGetTourVisibility(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	stranger := store.addUser("Ivan", "Georgiev", models.RoleUser)
	moderator := store.addUser("Mo", "Derator", models.RoleModerator)
	category := store.addCategory("Hiking")
	approved := store.addTour(publisher, category, "Approved", models.TourStatusApproved, false)
	pending := store.addTour(publisher, category, "Pending", models.TourStatusPending, false)
	deleted := store.addTour(publisher, category, "Deleted", models.TourStatusApproved, true)

	t.Run("approved tour is public", func(t *testing.T) {
		tour, err := svc.GetByID(policy.Actor{}, approved.ID)
		require.NoError(t, err)
		assert.Equal(t, approved.ID, tour.ID)
	})

	t.Run("hidden tours read as missing", func(t *testing.T) {
		for _, id := range []uint{pending.ID, deleted.ID} {
			_, err := svc.GetByID(policy.Actor{}, id)
			assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

			_, err = svc.GetByID(actorFor(stranger), id)
			assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
		}
	})

	t.Run("publisher sees own pending tour", func(t *testing.T) {
		tour, err := svc.GetByID(actorFor(publisher), pending.ID)
		require.NoError(t, err)
		assert.Equal(t, models.TourStatusPending, tour.Status)
	})

	t.Run("staff see hidden tours", func(t *testing.T) {
		tour, err := svc.GetByID(actorFor(moderator), deleted.ID)
		require.NoError(t, err)
		assert.True(t, tour.IsDeleted)
	})

	t.Run("absent tour stays not found", func(t *testing.T) {
		_, err := svc.GetByID(actorFor(moderator), 4242)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestComments(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	author := store.addUser("Ana", "Ivanova", models.RoleUser)
	stranger := store.addUser("Ivan", "Georgiev", models.RoleUser)
	category := store.addCategory("Hiking")
	tour := store.addTour(publisher, category, "Commented", models.TourStatusApproved, false)

	comment, err := svc.AddComment(actorFor(author), tour.ID, "Lovely views")
	require.NoError(t, err)
	assert.Equal(t, author.ID, comment.UserID)
	assert.Equal(t, "Ana", comment.User.FirstName)

	t.Run("edit by stranger forbidden", func(t *testing.T) {
		_, err := svc.EditComment(actorFor(stranger), tour.ID, comment.ID, "Graffiti")
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))
	})

	t.Run("delete by stranger forbidden and list unchanged", func(t *testing.T) {
		err := svc.DeleteComment(actorFor(stranger), tour.ID, comment.ID)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

		fresh, err := svc.GetByID(policy.Actor{}, tour.ID)
		require.NoError(t, err)
		assert.Len(t, fresh.Comments, 1)
	})

	t.Run("author edits and deletes", func(t *testing.T) {
		edited, err := svc.EditComment(actorFor(author), tour.ID, comment.ID, "Even lovelier")
		require.NoError(t, err)
		assert.Equal(t, "Even lovelier", edited.Content)

		require.NoError(t, svc.DeleteComment(actorFor(author), tour.ID, comment.ID))
		fresh, err := svc.GetByID(policy.Actor{}, tour.ID)
		require.NoError(t, err)
		assert.Empty(t, fresh.Comments)
	})

	t.Run("missing tour or comment", func(t *testing.T) {
		_, err := svc.AddComment(actorFor(author), 4242, "void")
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))

		_, err = svc.EditComment(actorFor(author), tour.ID, 4242, "void")
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestUpsertRating(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	rater := store.addUser("Ana", "Ivanova", models.RoleUser)
	other := store.addUser("Ivan", "Georgiev", models.RoleUser)
	category := store.addCategory("Hiking")
	tour := store.addTour(publisher, category, "Rated", models.TourStatusApproved, false)

	rating, created, err := svc.UpsertRating(actorFor(rater), tour.ID, 3)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 3, rating.Score)

	// rating again overwrites instead of duplicating
	rating, created, err = svc.UpsertRating(actorFor(rater), tour.ID, 5)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, 5, rating.Score)

	fresh, err := svc.GetByID(policy.Actor{}, tour.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Ratings, 1)
	assert.Equal(t, 5, fresh.Ratings[0].Score)
	assert.Equal(t, rater.ID, fresh.Ratings[0].UserID)

	t.Run("different authors are independent", func(t *testing.T) {
		_, created, err := svc.UpsertRating(actorFor(other), tour.ID, 4)
		require.NoError(t, err)
		assert.True(t, created)

		fresh, err := svc.GetByID(policy.Actor{}, tour.ID)
		require.NoError(t, err)
		assert.Len(t, fresh.Ratings, 2)
	})

	t.Run("score bounds enforced", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			_, _, err := svc.UpsertRating(actorFor(rater), tour.ID, score)
			require.Error(t, err)
			assert.Equal(t, apperrors.CodeValidation, apperrors.CodeOf(err))
		}
	})

	t.Run("missing tour", func(t *testing.T) {
		_, _, err := svc.UpsertRating(actorFor(rater), 4242, 4)
		assert.Equal(t, apperrors.CodeNotFound, apperrors.CodeOf(err))
	})
}

func TestRatingOwnership(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	rater := store.addUser("Ana", "Ivanova", models.RoleUser)
	stranger := store.addUser("Ivan", "Georgiev", models.RoleUser)
	category := store.addCategory("Hiking")
	tour := store.addTour(publisher, category, "Rated", models.TourStatusApproved, false)

	rating, _, err := svc.UpsertRating(actorFor(rater), tour.ID, 2)
	require.NoError(t, err)

	_, err = svc.EditRating(actorFor(stranger), tour.ID, rating.ID, 5)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	err = svc.DeleteRating(actorFor(stranger), tour.ID, rating.ID)
	assert.Equal(t, apperrors.CodeForbidden, apperrors.CodeOf(err))

	fresh, err := svc.GetByID(policy.Actor{}, tour.ID)
	require.NoError(t, err)
	require.Len(t, fresh.Ratings, 1)
	assert.Equal(t, 2, fresh.Ratings[0].Score)

	edited, err := svc.EditRating(actorFor(rater), tour.ID, rating.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, edited.Score)

	require.NoError(t, svc.DeleteRating(actorFor(rater), tour.ID, rating.ID))
	fresh, err = svc.GetByID(policy.Actor{}, tour.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Ratings)
}

func TestToggleSave(t *testing.T) {
	store := newMemStore()
	svc := services.NewTourService(store.repos())
	publisher := store.addUser("Mila", "Petrova", models.RoleUser)
	user := store.addUser("Ana", "Ivanova", models.RoleUser)
	category := store.addCategory("Hiking")
	approved := store.addTour(publisher, category, "Approved", models.TourStatusApproved, false)
	pending := store.addTour(publisher, category, "Pending", models.TourStatusPending, false)

	saved, err := svc.ToggleSave(actorFor(user), approved.ID)
	require.NoError(t, err)
	assert.True(t, saved)

	_, err = svc.ToggleSave(actorFor(user), pending.ID)
	require.NoError(t, err)

	// only approved, not-deleted tours come back
	tours, err := svc.ListSaved(actorFor(user))
	require.NoError(t, err)
	require.Len(t, tours, 1)
	assert.Equal(t, approved.ID, tours[0].ID)

	saved, err = svc.ToggleSave(actorFor(user), approved.ID)
	require.NoError(t, err)
	assert.False(t, saved)

	tours, err = svc.ListSaved(actorFor(user))
	require.NoError(t, err)
	assert.Empty(t, tours)
}
