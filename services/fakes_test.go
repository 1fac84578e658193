package services_test

import (
	"errors"
	"sort"
	"time"

	"github.com/roamly/api-go/models"
	"github.com/roamly/api-go/repository"
)

// memStore is an in-memory implementation of every repository interface so
// the services can be exercised without a database. Joins are resolved the
// way the gorm preloads do.
type memStore struct {
	users      map[uint]models.User
	categories map[uint]models.Category
	tours      map[uint]models.Tour
	comments   map[uint]models.Comment
	ratings    map[uint]models.Rating
	tickets    map[uint]models.Ticket
	messages   map[uint]models.TicketMessage
	audit      []models.AuditLogEntry
	saved      map[uint]map[uint]bool

	nextID    uint
	clock     time.Time
	failAudit bool
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint]models.User{},
		categories: map[uint]models.Category{},
		tours:      map[uint]models.Tour{},
		comments:   map[uint]models.Comment{},
		ratings:    map[uint]models.Rating{},
		tickets:    map[uint]models.Ticket{},
		messages:   map[uint]models.TicketMessage{},
		saved:      map[uint]map[uint]bool{},
		clock:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// One wrapper per interface; the repo interfaces share method names (Create,
// GetByID, ...) so a single struct cannot implement them all.
type fakeTourRepo struct{ *memStore }
type fakeCategoryRepo struct{ *memStore }
type fakeTicketRepo struct{ *memStore }
type fakeAuditRepo struct{ *memStore }
type fakeUserRepo struct{ *memStore }

func (m *memStore) repos() *repository.Repos {
	return &repository.Repos{
		Tours:      fakeTourRepo{m},
		Categories: fakeCategoryRepo{m},
		Tickets:    fakeTicketRepo{m},
		Audit:      fakeAuditRepo{m},
		Users:      fakeUserRepo{m},
	}
}

func (f fakeCategoryRepo) Create(category *models.Category) error { return f.createCategory(category) }
func (f fakeCategoryRepo) GetByID(id uint) (models.Category, error) {
	return f.getCategoryByID(id)
}
func (f fakeCategoryRepo) List() ([]models.Category, error) { return f.listCategories() }
func (f fakeCategoryRepo) Delete(id uint) error             { return f.deleteCategory(id) }

func (f fakeTicketRepo) Create(ticket *models.Ticket) error { return f.createTicket(ticket) }
func (f fakeTicketRepo) GetByID(id uint) (models.Ticket, error) {
	return f.getTicketByID(id)
}
func (f fakeTicketRepo) Save(ticket *models.Ticket) error { return f.saveTicket(ticket) }
func (f fakeTicketRepo) ListByUser(userID uint) ([]models.Ticket, error) {
	return f.listTicketsByUser(userID)
}
func (f fakeTicketRepo) ListAll() ([]models.Ticket, error) { return f.listAllTickets() }

func (f fakeAuditRepo) Create(entry *models.AuditLogEntry) error { return f.createAuditEntry(entry) }
func (f fakeAuditRepo) List() ([]models.AuditLogEntry, error)    { return f.listAuditEntries() }

func (f fakeUserRepo) Create(user *models.User) error       { return f.createUser(user) }
func (f fakeUserRepo) GetByID(id uint) (models.User, error) { return f.getUserByID(id) }
func (f fakeUserRepo) Save(user *models.User) error         { return f.saveUser(user) }
func (f fakeUserRepo) List() ([]models.User, error)         { return f.listUsers() }

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) now() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

// --- fixtures ---

func (m *memStore) addUser(firstName, lastName, role string) models.User {
	user := models.User{
		ID:        m.id(),
		CreatedAt: m.now(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     firstName + "@example.com",
		Role:      role,
	}
	m.users[user.ID] = user
	return user
}

func (m *memStore) addCategory(name string) models.Category {
	category := models.Category{ID: m.id(), CreatedAt: m.now(), Name: name}
	m.categories[category.ID] = category
	return category
}

func (m *memStore) addTour(publisher models.User, category models.Category, name, status string, deleted bool) models.Tour {
	tour := models.Tour{
		ID:          m.id(),
		CreatedAt:   m.now(),
		Name:        name,
		Description: name + " description",
		Location:    "somewhere",
		CategoryID:  category.ID,
		PublisherID: publisher.ID,
		Status:      status,
		IsDeleted:   deleted,
	}
	m.tours[tour.ID] = tour
	return tour
}

func (m *memStore) addTicket(opener models.User, status string) models.Ticket {
	ticket := models.Ticket{
		ID:          m.id(),
		CreatedAt:   m.now(),
		UpdatedAt:   m.now(),
		UserID:      opener.ID,
		Reason:      "problem",
		Description: "something broke",
		Status:      status,
	}
	m.tickets[ticket.ID] = ticket
	return ticket
}

// --- TourRepo ---

func (m *memStore) hydrateTour(tour models.Tour) models.Tour {
	tour.Category = m.categories[tour.CategoryID]
	tour.Publisher = m.users[tour.PublisherID]
	tour.Comments = []models.Comment{}
	tour.Ratings = []models.Rating{}
	for _, comment := range m.comments {
		if comment.TourID == tour.ID {
			comment.User = m.users[comment.UserID]
			tour.Comments = append(tour.Comments, comment)
		}
	}
	for _, rating := range m.ratings {
		if rating.TourID == tour.ID {
			rating.User = m.users[rating.UserID]
			tour.Ratings = append(tour.Ratings, rating)
		}
	}
	sort.Slice(tour.Comments, func(i, j int) bool { return tour.Comments[i].ID < tour.Comments[j].ID })
	sort.Slice(tour.Ratings, func(i, j int) bool { return tour.Ratings[i].ID < tour.Ratings[j].ID })
	return tour
}

func (m *memStore) listTours(filter func(models.Tour) bool) []models.Tour {
	tours := []models.Tour{}
	for _, tour := range m.tours {
		if filter(tour) {
			tours = append(tours, m.hydrateTour(tour))
		}
	}
	// newest first, mirroring the created_at DESC ordering
	sort.Slice(tours, func(i, j int) bool { return tours[i].ID > tours[j].ID })
	return tours
}

func (m *memStore) Create(tour *models.Tour) error {
	tour.ID = m.id()
	tour.CreatedAt = m.now()
	m.tours[tour.ID] = *tour
	return nil
}

func (m *memStore) GetByID(id uint) (models.Tour, error) {
	tour, ok := m.tours[id]
	if !ok {
		return models.Tour{}, repository.ErrNotFound
	}
	return m.hydrateTour(tour), nil
}

func (m *memStore) Save(tour *models.Tour) error {
	if _, ok := m.tours[tour.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *tour
	stored.Category = models.Category{}
	stored.Publisher = models.User{}
	stored.Comments = nil
	stored.Ratings = nil
	stored.UpdatedAt = m.now()
	m.tours[tour.ID] = stored
	return nil
}

func (m *memStore) ListPublic() ([]models.Tour, error) {
	return m.listTours(func(t models.Tour) bool {
		return !t.IsDeleted && t.Status == models.TourStatusApproved
	}), nil
}

func (m *memStore) ListNotDeleted() ([]models.Tour, error) {
	return m.listTours(func(t models.Tour) bool { return !t.IsDeleted }), nil
}

func (m *memStore) ListAll() ([]models.Tour, error) {
	return m.listTours(func(models.Tour) bool { return true }), nil
}

func (m *memStore) ListByPublisher(userID uint) ([]models.Tour, error) {
	return m.listTours(func(t models.Tour) bool {
		return t.PublisherID == userID && !t.IsDeleted && t.Status == models.TourStatusApproved
	}), nil
}

func (m *memStore) ListByCategory(categoryID uint) ([]models.Tour, error) {
	return m.listTours(func(t models.Tour) bool {
		return t.CategoryID == categoryID && !t.IsDeleted && t.Status == models.TourStatusApproved
	}), nil
}

func (m *memStore) AddComment(comment *models.Comment) error {
	comment.ID = m.id()
	comment.CreatedAt = m.now()
	m.comments[comment.ID] = *comment
	comment.User = m.users[comment.UserID]
	return nil
}

func (m *memStore) GetComment(tourID, commentID uint) (models.Comment, error) {
	comment, ok := m.comments[commentID]
	if !ok || comment.TourID != tourID {
		return models.Comment{}, repository.ErrNotFound
	}
	comment.User = m.users[comment.UserID]
	return comment, nil
}

func (m *memStore) SaveComment(comment *models.Comment) error {
	if _, ok := m.comments[comment.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *comment
	stored.User = models.User{}
	stored.UpdatedAt = m.now()
	m.comments[comment.ID] = stored
	return nil
}

func (m *memStore) DeleteComment(comment *models.Comment) error {
	delete(m.comments, comment.ID)
	return nil
}

func (m *memStore) AddRating(rating *models.Rating) error {
	rating.ID = m.id()
	rating.CreatedAt = m.now()
	m.ratings[rating.ID] = *rating
	rating.User = m.users[rating.UserID]
	return nil
}

func (m *memStore) GetRating(tourID, ratingID uint) (models.Rating, error) {
	rating, ok := m.ratings[ratingID]
	if !ok || rating.TourID != tourID {
		return models.Rating{}, repository.ErrNotFound
	}
	rating.User = m.users[rating.UserID]
	return rating, nil
}

func (m *memStore) GetRatingByAuthor(tourID, userID uint) (models.Rating, error) {
	for _, rating := range m.ratings {
		if rating.TourID == tourID && rating.UserID == userID {
			rating.User = m.users[rating.UserID]
			return rating, nil
		}
	}
	return models.Rating{}, repository.ErrNotFound
}

func (m *memStore) SaveRating(rating *models.Rating) error {
	if _, ok := m.ratings[rating.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *rating
	stored.User = models.User{}
	stored.UpdatedAt = m.now()
	m.ratings[rating.ID] = stored
	return nil
}

func (m *memStore) DeleteRating(rating *models.Rating) error {
	delete(m.ratings, rating.ID)
	return nil
}

// --- CategoryRepo ---

func (m *memStore) createCategory(category *models.Category) error {
	category.ID = m.id()
	category.CreatedAt = m.now()
	m.categories[category.ID] = *category
	return nil
}

func (m *memStore) getCategoryByID(id uint) (models.Category, error) {
	category, ok := m.categories[id]
	if !ok {
		return models.Category{}, repository.ErrNotFound
	}
	return category, nil
}

func (m *memStore) listCategories() ([]models.Category, error) {
	categories := []models.Category{}
	for _, category := range m.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *memStore) deleteCategory(id uint) error {
	if _, ok := m.categories[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

// --- TicketRepo ---

func (m *memStore) hydrateTicket(ticket models.Ticket) models.Ticket {
	ticket.User = m.users[ticket.UserID]
	ticket.Messages = []models.TicketMessage{}
	for _, message := range m.messages {
		if message.TicketID == ticket.ID {
			message.Sender = m.users[message.SenderID]
			ticket.Messages = append(ticket.Messages, message)
		}
	}
	sort.Slice(ticket.Messages, func(i, j int) bool { return ticket.Messages[i].ID < ticket.Messages[j].ID })
	return ticket
}

func (m *memStore) createTicket(ticket *models.Ticket) error {
	ticket.ID = m.id()
	ticket.CreatedAt = m.now()
	ticket.UpdatedAt = ticket.CreatedAt
	m.tickets[ticket.ID] = *ticket
	return nil
}

func (m *memStore) getTicketByID(id uint) (models.Ticket, error) {
	ticket, ok := m.tickets[id]
	if !ok {
		return models.Ticket{}, repository.ErrNotFound
	}
	return m.hydrateTicket(ticket), nil
}

func (m *memStore) saveTicket(ticket *models.Ticket) error {
	if _, ok := m.tickets[ticket.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *ticket
	stored.User = models.User{}
	stored.Messages = nil
	stored.UpdatedAt = m.now()
	m.tickets[ticket.ID] = stored
	return nil
}

func (m *memStore) listTicketsByUser(userID uint) ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	for _, ticket := range m.tickets {
		if ticket.UserID == userID {
			tickets = append(tickets, m.hydrateTicket(ticket))
		}
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID > tickets[j].ID })
	return tickets, nil
}

func (m *memStore) listAllTickets() ([]models.Ticket, error) {
	tickets := []models.Ticket{}
	for _, ticket := range m.tickets {
		tickets = append(tickets, m.hydrateTicket(ticket))
	}
	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID > tickets[j].ID })
	return tickets, nil
}

func (m *memStore) AddMessage(message *models.TicketMessage) error {
	message.ID = m.id()
	message.CreatedAt = m.now()
	m.messages[message.ID] = *message
	message.Sender = m.users[message.SenderID]
	return nil
}

// --- AuditRepo ---

func (m *memStore) createAuditEntry(entry *models.AuditLogEntry) error {
	if m.failAudit {
		return errors.New("audit store unavailable")
	}
	entry.ID = m.id()
	entry.CreatedAt = m.now()
	m.audit = append(m.audit, *entry)
	return nil
}

func (m *memStore) listAuditEntries() ([]models.AuditLogEntry, error) {
	entries := make([]models.AuditLogEntry, 0, len(m.audit))
	for i := len(m.audit) - 1; i >= 0; i-- {
		entry := m.audit[i]
		entry.User = m.users[entry.UserID]
		entries = append(entries, entry)
	}
	return entries, nil
}

// --- UserRepo ---

func (m *memStore) createUser(user *models.User) error {
	user.ID = m.id()
	user.CreatedAt = m.now()
	m.users[user.ID] = *user
	return nil
}

func (m *memStore) getUserByID(id uint) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (m *memStore) GetByEmail(email string) (models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (m *memStore) saveUser(user *models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return repository.ErrNotFound
	}
	stored := *user
	stored.Tours = nil
	stored.SavedTours = nil
	stored.UpdatedAt = m.now()
	m.users[user.ID] = stored
	return nil
}

func (m *memStore) listUsers() ([]models.User, error) {
	users := []models.User{}
	for _, user := range m.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })
	return users, nil
}

func (m *memStore) IsTourSaved(userID, tourID uint) (bool, error) {
	return m.saved[userID][tourID], nil
}

func (m *memStore) SaveTour(userID, tourID uint) error {
	if m.saved[userID] == nil {
		m.saved[userID] = map[uint]bool{}
	}
	m.saved[userID][tourID] = true
	return nil
}

func (m *memStore) UnsaveTour(userID, tourID uint) error {
	delete(m.saved[userID], tourID)
	return nil
}

func (m *memStore) ListSavedTours(userID uint) ([]models.Tour, error) {
	return m.listTours(func(t models.Tour) bool {
		return m.saved[userID][t.ID] && !t.IsDeleted && t.Status == models.TourStatusApproved
	}), nil
}
