package services

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-admin/models"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

type RoomPatch struct {
	RoomNumber *string
	Type       *string
	Capacity   *int
	Price      *float64
	State      *string
	CustomerID *uint
	Amenities  *datatypes.JSON
}

func (p RoomPatch) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p.RoomNumber != nil {
		fields["room_number"] = strings.TrimSpace(*p.RoomNumber)
	}
	if p.Type != nil {
		fields["type"] = strings.TrimSpace(*p.Type)
	}
	if p.Capacity != nil {
		fields["capacity"] = *p.Capacity
	}
	if p.Price != nil {
		fields["price"] = *p.Price
	}
	if p.State != nil {
		fields["state"] = *p.State
	}
	if p.CustomerID != nil {
		fields["customer_id"] = *p.CustomerID
	}
	if p.Amenities != nil {
		fields["amenities"] = *p.Amenities
	}
	return fields
}

// occupant returns the customer_id a room in state must carry. Only an occupied room keeps
// its occupant; every other state resets it to 0.
func occupant(state string, customerID uint) (uint, error) {
	if state != models.RoomOccupied {
		return 0, nil
	}
	if customerID == 0 {
		return 0, ErrInvalidRoomOccupant
	}
	return customerID, nil
}

func (s *RoomService) List(ctx context.Context) ([]models.Room, error) {
	return listAll[models.Room](ctx, s.DB, "rooms.list", "id ASC")
}

func (s *RoomService) GetByID(ctx context.Context, id uint) (*models.Room, error) {
	return getByID[models.Room](ctx, s.DB, "rooms.get", id)
}

func (s *RoomService) Create(ctx context.Context, room *models.Room) error {
	room.ID = 0
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.State == "" {
		room.State = models.RoomAvailable
	}

	customerID, err := occupant(room.State, room.CustomerID)
	if err != nil {
		return err
	}
	room.CustomerID = customerID

	return createRecord(ctx, s.DB, "rooms.create", room)
}

// Update applies patch. The occupant rule is checked against the merged row, so changing only
// the state of an occupied room also clears its customer.
func (s *RoomService) Update(ctx context.Context, id uint, patch RoomPatch) (*models.Room, error) {
	fields := patch.fields()

	if patch.State != nil || patch.CustomerID != nil {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		state := current.State
		if patch.State != nil {
			state = *patch.State
		}
		customerID := current.CustomerID
		if patch.CustomerID != nil {
			customerID = *patch.CustomerID
		}

		normalized, err := occupant(state, customerID)
		if err != nil {
			return nil, err
		}
		if normalized != current.CustomerID || patch.CustomerID != nil {
			fields["customer_id"] = normalized
		}
	}

	return updateByID[models.Room](ctx, s.DB, "rooms.update", id, fields)
}

func (s *RoomService) Delete(ctx context.Context, id uint) error {
	return deleteByID[models.Room](ctx, s.DB, "rooms.delete", id)
}
