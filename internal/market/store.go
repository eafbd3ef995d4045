package market

import (
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"campusmart/internal/catalog"
	"campusmart/internal/domain"
	"campusmart/internal/registry"
	"campusmart/internal/seed"
	cartsvc "campusmart/internal/services/cart"
	notificationsvc "campusmart/internal/services/notification"
	ordersvc "campusmart/internal/services/order"
	reportsvc "campusmart/internal/services/report"
)

// Store is the marketplace's single source of truth.
type Store struct {
	mu sync.Mutex

	port  domain.SlotPort
	log   *log.Logger
	clock domain.Clock
	newID domain.IDGenerator
	seed  seed.Data

	user       *domain.User
	users      *registry.Registry[domain.User]
	businesses *registry.Registry[domain.Business]
	products   *registry.Registry[domain.Product]
	cart       domain.CartService
	orders     domain.OrderService
	reports    domain.ReportService
	inbox      domain.NotificationService
	onboarded  bool
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock sets the time source for order, report and notification timestamps.
func WithClock(c domain.Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithIDGenerator sets the generator for ids the store assigns.
func WithIDGenerator(g domain.IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.newID = g
		}
	}
}

// WithSeed replaces the first-run dataset used when the users, businesses or
// products slot is absent.
func WithSeed(d seed.Data) Option {
	return func(s *Store) { s.seed = d }
}

// New builds a store backed by port and loads every slot. Absent or
// unreadable slots start from their defaults.
func New(port domain.SlotPort, opts ...Option) *Store {
	s := &Store{
		port:  port,
		log:   log.New(io.Discard, "", 0),
		clock: time.Now,
		newID: uuid.NewString,
		seed:  seed.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.users = registry.New(func(u domain.User) string { return u.ID }, domain.User.Clone)
	s.businesses = registry.New(func(b domain.Business) string { return b.ID }, domain.Business.Clone)
	s.products = registry.New(func(p domain.Product) string { return p.ID }, domain.Product.Clone)
	s.cart = cartsvc.New()
	s.orders = ordersvc.New(s.clock, s.newID)
	s.inbox = notificationsvc.New(s.clock, s.newID)
	s.reports = reportsvc.New(directory{s}, s.inbox, s.clock, s.newID)

	s.load()
	return s
}

// Close releases the underlying port when it holds resources.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.port.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Store) load() {
	var user *domain.User
	if s.port.Load(domain.SlotUser, &user) && user != nil {
		u := user.Clone()
		s.user = &u
	}

	users := s.seed.Users
	s.port.Load(domain.SlotUsers, &users)
	s.users.Replace(users)

	businesses := s.seed.Businesses
	s.port.Load(domain.SlotBusinesses, &businesses)
	s.businesses.Replace(businesses)

	products := s.seed.Products
	s.port.Load(domain.SlotProducts, &products)
	valid := products[:0:0]
	for _, p := range products {
		if err := catalog.Validate(p); err != nil {
			s.log.Printf("load %s: dropping %v", domain.SlotProducts, err)
			continue
		}
		valid = append(valid, p)
	}
	s.products.Replace(catalog.NormalizeAll(valid))

	var lines []domain.CartLine
	s.port.Load(domain.SlotCart, &lines)
	s.cart.Restore(lines)

	var orders []domain.Order
	s.port.Load(domain.SlotOrders, &orders)
	s.orders.Restore(orders)

	var reports []domain.Report
	s.port.Load(domain.SlotReports, &reports)
	s.reports.Restore(reports)

	var inboxes map[string][]domain.Notification
	s.port.Load(domain.SlotNotifications, &inboxes)
	s.inbox.Restore(inboxes)

	s.port.Load(domain.SlotOnboardingComplete, &s.onboarded)
}

// commit saves each named slot from the current in-memory state.
func (s *Store) commit(slots ...string) {
	for _, slot := range slots {
		if err := s.port.Save(slot, s.slotValue(slot)); err != nil {
			s.log.Printf("save %s: %v", slot, err)
		}
	}
}

func (s *Store) slotValue(slot string) any {
	switch slot {
	case domain.SlotUser:
		return s.user
	case domain.SlotUsers:
		return s.users.Values()
	case domain.SlotBusinesses:
		return s.businesses.Values()
	case domain.SlotProducts:
		return s.products.Values()
	case domain.SlotCart:
		return s.cart.Lines()
	case domain.SlotOrders:
		return s.orders.Orders()
	case domain.SlotReports:
		return s.reports.Reports()
	case domain.SlotNotifications:
		return s.inbox.Snapshot()
	case domain.SlotOnboardingComplete:
		return s.onboarded
	}
	return nil
}

// directory resolves report ownership against the store's registries.
// Callers already hold s.mu.
type directory struct{ s *Store }

func (d directory) ProductBusiness(productID string) (string, bool) {
	p, ok := d.s.products.Get(productID)
	if !ok {
		return "", false
	}
	return p.BusinessID, true
}

func (d directory) BusinessOwner(businessID string) (string, bool) {
	u, ok := d.s.users.Find(func(u domain.User) bool { return u.HasBusiness(businessID) })
	if !ok {
		return "", false
	}
	return u.ID, true
}
