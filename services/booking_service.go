// services/booking_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"hotel-admin/models"
)

// BookingService wraps *gorm.DB for everything booking related: CRUD, the availability check,
// price derivation and the joined read model.
type BookingService struct {
	DB *gorm.DB

	// SameDayTurnover treats stays as half-open ranges when checking availability.
	SameDayTurnover bool

	Policies PolicyTable
}

func NewBookingService(db *gorm.DB, sameDayTurnover bool) *BookingService {
	return &BookingService{DB: db, SameDayTurnover: sameDayTurnover, Policies: DefaultPolicies()}
}

type BookingPatch struct {
	CustomerID *uint
	RoomID     *uint
	StartDate  *time.Time
	EndDate    *time.Time
	TotalPrice *float64
	State      *string
}

type Quote struct {
	RoomID     uint    `json:"room_id"`
	Nights     int     `json:"nights"`
	Rate       float64 `json:"rate"`
	TotalPrice float64 `json:"total_price"`
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return listAll[models.Booking](ctx, s.DB, "bookings.list", "start_date DESC, id DESC")
}

func (s *BookingService) GetByID(ctx context.Context, id uint) (*models.Booking, error) {
	return getByID[models.Booking](ctx, s.DB, "bookings.get", id)
}

// ListWithRelations loads bookings, customers and rooms concurrently and joins them. A failed
// bookings load always fails the call; a failed customer or room load follows the relation_join
// policy and, when tolerated, leaves the related fields empty.
func (s *BookingService) ListWithRelations(ctx context.Context) ([]models.BookingWithRelations, []string, error) {
	var (
		bookings             []models.Booking
		customers            []models.Customer
		rooms                []models.Room
		customerErr, roomErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = listAll[models.Booking](gctx, s.DB, "bookings.list", "start_date DESC, id DESC")
		return err
	})
	g.Go(func() error {
		customers, customerErr = listAll[models.Customer](gctx, s.DB, "customers.list", "id ASC")
		return nil
	})
	g.Go(func() error {
		rooms, roomErr = listAll[models.Room](gctx, s.DB, "rooms.list", "id ASC")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	warnings, err := s.resolveRelations(customerErr, roomErr)
	if err != nil {
		return nil, nil, err
	}
	return JoinBookings(bookings, customers, rooms), warnings, nil
}

// GetWithRelations returns one booking with its customer and room summary. A dangling
// customer_id or room_id leaves the related fields empty.
func (s *BookingService) GetWithRelations(ctx context.Context, id uint) (*models.BookingWithRelations, []string, error) {
	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var customers []models.Customer
	customerErr := remote("customers.get",
		s.DB.WithContext(ctx).Where("id = ?", booking.CustomerID).Limit(1).Find(&customers).Error)
	var rooms []models.Room
	roomErr := remote("rooms.get",
		s.DB.WithContext(ctx).Where("id = ?", booking.RoomID).Limit(1).Find(&rooms).Error)

	warnings, err := s.resolveRelations(customerErr, roomErr)
	if err != nil {
		return nil, nil, err
	}
	joined := JoinBookings([]models.Booking{*booking}, customers, rooms)
	return &joined[0], warnings, nil
}

func (s *BookingService) resolveRelations(errs ...error) ([]string, error) {
	var warnings []string
	for _, err := range errs {
		w, err := s.Policies.Resolve(OpRelationJoin, err)
		if err != nil {
			return nil, err
		}
		warnings = appendWarning(warnings, w)
	}
	return warnings, nil
}

func appendWarning(warnings []string, w string) []string {
	if w == "" {
		return warnings
	}
	return append(warnings, w)
}

// JoinBookings builds the read model from already loaded collections.
func JoinBookings(bookings []models.Booking, customers []models.Customer, rooms []models.Room) []models.BookingWithRelations {
	customerByID := make(map[uint]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}
	roomByID := make(map[uint]models.Room, len(rooms))
	for _, r := range rooms {
		roomByID[r.ID] = r
	}

	out := make([]models.BookingWithRelations, 0, len(bookings))
	for _, b := range bookings {
		row := models.BookingWithRelations{Booking: b}
		if c, ok := customerByID[b.CustomerID]; ok {
			row.CustomerName = c.Name
			row.CustomerEmail = c.Email
		}
		if r, ok := roomByID[b.RoomID]; ok {
			row.RoomNumber = r.RoomNumber
			row.RoomType = r.Type
		}
		out = append(out, row)
	}
	return out
}

// IsRoomAvailable reports whether no confirmed booking of roomID overlaps [start, end].
// excludeBookingID skips the booking being edited. The query only narrows to candidates that
// touch the range inclusively; Overlaps decides, honouring SameDayTurnover.
func (s *BookingService) IsRoomAvailable(ctx context.Context, roomID uint, start, end time.Time, excludeBookingID *uint) (bool, error) {
	q := s.DB.WithContext(ctx).
		Select("id", "start_date", "end_date").
		Where("room_id = ? AND state = ?", roomID, models.BookingConfirmed).
		Where("start_date <= ? AND end_date >= ?", end, start)
	if excludeBookingID != nil {
		q = q.Where("id <> ?", *excludeBookingID)
	}

	var candidates []models.Booking
	if err := q.Find(&candidates).Error; err != nil {
		return false, remote("bookings.availability", err)
	}
	for _, b := range candidates {
		if Overlaps(b.StartDate, b.EndDate, start, end, s.SameDayTurnover) {
			return false, nil
		}
	}
	return true, nil
}

// CheckAvailability answers the availability endpoint. When the availability_query policy
// tolerates a failed lookup the room is reported as available, with a warning under PolicyWarn.
func (s *BookingService) CheckAvailability(ctx context.Context, roomID uint, start, end time.Time, excludeBookingID *uint) (bool, []string, error) {
	available, err := s.IsRoomAvailable(ctx, roomID, start, end, excludeBookingID)
	if err == nil {
		return available, nil, nil
	}
	w, err := s.Policies.Resolve(OpAvailabilityQuery, err)
	if err != nil {
		return false, nil, err
	}
	return true, appendWarning(nil, w), nil
}

// Quote derives the total for a stay in roomID from the room's nightly rate.
func (s *BookingService) Quote(ctx context.Context, roomID uint, start, end time.Time) (Quote, error) {
	var room models.Room
	if err := s.DB.WithContext(ctx).First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quote{}, remote("bookings.quote", fmt.Errorf("%w: %d", ErrUnknownRoom, roomID))
		}
		return Quote{}, remote("bookings.quote", err)
	}

	end = ClampEnd(start, end)
	return Quote{
		RoomID:     room.ID,
		Nights:     Nights(start, end),
		Rate:       room.Price,
		TotalPrice: DerivePrice(room.Price, start, end),
	}, nil
}

// checkAvailability runs the availability check for a write. Failures of the check itself are
// handled by the availability_on_write policy and may come back as a warning.
func (s *BookingService) checkAvailability(ctx context.Context, b models.Booking, exclude *uint) (string, error) {
	available, err := s.IsRoomAvailable(ctx, b.RoomID, b.StartDate, b.EndDate, exclude)
	if err != nil {
		log.Printf("availability check for room %d: %v", b.RoomID, err)
		return s.Policies.Resolve(OpAvailabilityOnWrite, err)
	}
	if !available {
		return "", ErrRoomUnavailable
	}
	return "", nil
}

// quoteForWrite prices the stay of b for a write. An unknown room always blocks. Other lookup
// failures follow the price_derivation policy; a tolerated failure returns a nil quote.
func (s *BookingService) quoteForWrite(ctx context.Context, b models.Booking) (*Quote, string, error) {
	quote, err := s.Quote(ctx, b.RoomID, b.StartDate, b.EndDate)
	if err == nil {
		return &quote, "", nil
	}
	if errors.Is(err, ErrUnknownRoom) {
		return nil, "", err
	}
	w, err := s.Policies.Resolve(OpPriceDerivation, err)
	return nil, w, err
}

// Create inserts a booking. An empty total_price is derived from the room rate, and a confirmed
// booking is rejected when it overlaps another confirmed booking of the same room.
func (s *BookingService) Create(ctx context.Context, booking *models.Booking) ([]string, error) {
	booking.ID = 0
	booking.StartDate = booking.StartDate.UTC()
	booking.EndDate = ClampEnd(booking.StartDate, booking.EndDate.UTC())
	if booking.State == "" {
		booking.State = models.BookingPending
	}

	var warnings []string
	if booking.TotalPrice <= 0 {
		quote, w, err := s.quoteForWrite(ctx, *booking)
		if err != nil {
			return nil, err
		}
		warnings = appendWarning(warnings, w)
		if quote != nil {
			booking.TotalPrice = quote.TotalPrice
		}
	}

	if booking.State == models.BookingConfirmed {
		w, err := s.checkAvailability(ctx, *booking, nil)
		if err != nil {
			return nil, err
		}
		warnings = appendWarning(warnings, w)
	}

	if err := createRecord(ctx, s.DB, "bookings.create", booking); err != nil {
		return nil, err
	}
	return warnings, nil
}

// Update applies patch to booking id. The merged row is validated: an inverted range has its end
// moved to the start, the price is re-derived when the stay changed and no explicit price was
// sent, and a confirmed result must not overlap another confirmed booking.
func (s *BookingService) Update(ctx context.Context, id uint, patch BookingPatch) (*models.Booking, []string, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	merged := *current
	fields := map[string]interface{}{}

	if patch.CustomerID != nil {
		merged.CustomerID = *patch.CustomerID
		fields["customer_id"] = merged.CustomerID
	}
	if patch.RoomID != nil {
		merged.RoomID = *patch.RoomID
		fields["room_id"] = merged.RoomID
	}
	if patch.StartDate != nil {
		merged.StartDate = patch.StartDate.UTC()
		fields["start_date"] = merged.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = patch.EndDate.UTC()
		fields["end_date"] = merged.EndDate
	}
	if patch.State != nil {
		merged.State = *patch.State
		fields["state"] = merged.State
	}

	if clamped := ClampEnd(merged.StartDate, merged.EndDate); !clamped.Equal(merged.EndDate) {
		merged.EndDate = clamped
		fields["end_date"] = clamped
	}

	var warnings []string
	stayChanged := patch.RoomID != nil || patch.StartDate != nil || patch.EndDate != nil
	if patch.TotalPrice != nil {
		fields["total_price"] = *patch.TotalPrice
	} else if stayChanged {
		quote, w, err := s.quoteForWrite(ctx, merged)
		if err != nil {
			return nil, nil, err
		}
		warnings = appendWarning(warnings, w)
		if quote != nil {
			fields["total_price"] = quote.TotalPrice
		}
	}

	if merged.State == models.BookingConfirmed && (stayChanged || patch.State != nil) {
		w, err := s.checkAvailability(ctx, merged, &id)
		if err != nil {
			return nil, nil, err
		}
		warnings = appendWarning(warnings, w)
	}

	updated, err := updateByID[models.Booking](ctx, s.DB, "bookings.update", id, fields)
	if err != nil {
		return nil, nil, err
	}
	return updated, warnings, nil
}

func (s *BookingService) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Booking](ctx, s.DB, "bookings.delete", id)
}
