package booking

import (
	"context"
	"errors"
	"sync"

	bookingRepo "medicare/database/repository/booking"
	"medicare/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memLedger is an in-memory BookingRepository. Each call is atomic on its own,
// like a single-document store operation, but nothing spans two calls.
type memLedger struct {
	mu        sync.Mutex
	bookings  []models.Reservation
	claims    map[string]primitive.ObjectID
	createErr error
	findErr   error
}

func newMemLedger() *memLedger {
	return &memLedger{claims: make(map[string]primitive.ObjectID)}
}

func (l *memLedger) FindByDate(_ context.Context, date string) ([]models.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.findErr != nil {
		return nil, l.findErr
	}
	var out []models.Reservation
	for _, b := range l.bookings {
		if b.AppointmentDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (l *memLedger) ExistsForRequester(_ context.Context, serviceName, date, email string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.bookings {
		if b.ServiceName == serviceName && b.AppointmentDate == date && b.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (l *memLedger) FindByEmail(_ context.Context, email string) ([]models.Reservation, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.Reservation
	for _, b := range l.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (l *memLedger) GetByID(_ context.Context, id string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, b := range l.bookings {
		if b.ID == oid {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

func (l *memLedger) Create(_ context.Context, reservation *models.Reservation) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.createErr != nil {
		return l.createErr
	}
	l.bookings = append(l.bookings, *reservation)
	return nil
}

func (l *memLedger) MarkPaid(_ context.Context, id, transactionID string) (*models.Reservation, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.bookings {
		if l.bookings[i].ID == oid {
			tx := transactionID
			l.bookings[i].Paid = true
			l.bookings[i].TransactionID = &tx
			updated := l.bookings[i]
			return &updated, nil
		}
	}
	return nil, nil
}

func (l *memLedger) ClaimSlot(_ context.Context, claim *models.SlotClaim) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, taken := l.claims[claim.Key]; taken {
		return bookingRepo.ErrSlotClaimed
	}
	l.claims[claim.Key] = claim.ReservationID
	return nil
}

func (l *memLedger) ReleaseSlot(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.claims, key)
	return nil
}

func (l *memLedger) EnsureIndexes(context.Context) error { return nil }

func (l *memLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.bookings)
}

type memCatalog struct {
	templates []models.ServiceTemplate
	err       error
}

func (c *memCatalog) ListTemplates(context.Context) ([]models.ServiceTemplate, error) {
	return c.templates, c.err
}

func (c *memCatalog) ListNames(context.Context) ([]models.ServiceName, error) {
	names := make([]models.ServiceName, 0, len(c.templates))
	for _, t := range c.templates {
		names = append(names, models.ServiceName{ID: t.ID, Name: t.Name})
	}
	return names, c.err
}

func (c *memCatalog) Create(_ context.Context, template *models.ServiceTemplate) error {
	c.templates = append(c.templates, *template)
	return nil
}

func (c *memCatalog) SetPriceAll(_ context.Context, price float64) (*models.UpdateResult, error) {
	for i := range c.templates {
		c.templates[i].Price = price
	}
	n := int64(len(c.templates))
	return &models.UpdateResult{Acknowledged: true, MatchedCount: n, ModifiedCount: n}, nil
}

func (c *memCatalog) Count(context.Context) (int64, error) { return int64(len(c.templates)), nil }

func (c *memCatalog) EnsureIndexes(context.Context) error { return nil }

type memPayments struct {
	mu       sync.Mutex
	payments []models.Payment
	err      error
}

func (p *memPayments) Insert(_ context.Context, payment *models.Payment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payments = append(p.payments, *payment)
	return nil
}

// memCache records invalidations so tests can assert on them.
type memCache struct {
	mu          sync.Mutex
	views       map[string][]models.ServiceAvailability
	gens        map[string]int64
	invalidated []string
	getErr      error
}

func newMemCache() *memCache {
	return &memCache{
		views: make(map[string][]models.ServiceAvailability),
		gens:  make(map[string]int64),
	}
}

func (c *memCache) Get(_ context.Context, date string) ([]models.ServiceAvailability, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	v, ok := c.views[date]
	return v, ok, nil
}

func (c *memCache) Generation(_ context.Context, date string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[date], nil
}

func (c *memCache) Set(_ context.Context, date string, gen int64, view []models.ServiceAvailability) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gens[date] != gen {
		return false, nil
	}
	c.views[date] = view
	return true, nil
}

func (c *memCache) Invalidate(_ context.Context, date string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[date]++
	delete(c.views, date)
	c.invalidated = append(c.invalidated, date)
	return nil
}

// hookedLedger runs afterFind once, after FindByDate has taken its snapshot.
type hookedLedger struct {
	*memLedger
	afterFind func()
}

func (l *hookedLedger) FindByDate(ctx context.Context, date string) ([]models.Reservation, error) {
	out, err := l.memLedger.FindByDate(ctx, date)
	if hook := l.afterFind; hook != nil {
		l.afterFind = nil
		hook()
	}
	return out, err
}

var errStoreDown = errors.New("server selection timeout")

func generalTemplate() models.ServiceTemplate {
	return models.ServiceTemplate{
		ID:    primitive.NewObjectID(),
		Name:  "General",
		Price: 89,
		Slots: []string{"09:00", "10:00"},
	}
}
