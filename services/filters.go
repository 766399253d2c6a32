package services

import (
	"strings"
	"time"

	"hotel-admin/models"
)

// FilterAll is the category value meaning "no filter". The empty string and the legacy "_all_"
// are accepted as aliases.
const FilterAll = "all"

// Inventory stock levels.
const (
	StockLow    = "low"
	StockNormal = "normal"
	StockHigh   = "high"

	lowStockThreshold  = 10
	highStockThreshold = 30
)

func NormalizeFilter(value string) string {
	value = strings.TrimSpace(value)
	if value == "" || value == "_all_" || strings.EqualFold(value, FilterAll) {
		return FilterAll
	}
	return value
}

func matchesCategory(filter, value string) bool {
	f := NormalizeFilter(filter)
	return f == FilterAll || value == f
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

// matchesSearch reports whether any of fields contains term, ignoring case.
func matchesSearch(term string, fields ...string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, f := range fields {
		if containsFold(f, term) {
			return true
		}
	}
	return false
}

type CustomerFilter struct {
	Search string `form:"search"`
	State  string `form:"state"`
}

func (f CustomerFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" || NormalizeFilter(f.State) != FilterAll
}

func FilterCustomers(customers []models.Customer, f CustomerFilter) []models.Customer {
	out := make([]models.Customer, 0, len(customers))
	for _, c := range customers {
		if !matchesSearch(f.Search, c.Name, c.ContactName, c.Email, c.Phone) {
			continue
		}
		if !matchesCategory(f.State, c.State) {
			continue
		}
		out = append(out, c)
	}
	return out
}

type RoomFilter struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	State  string `form:"state"`
}

func (f RoomFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		NormalizeFilter(f.Type) != FilterAll ||
		NormalizeFilter(f.State) != FilterAll
}

func FilterRooms(rooms []models.Room, f RoomFilter) []models.Room {
	out := make([]models.Room, 0, len(rooms))
	for _, r := range rooms {
		if !matchesSearch(f.Search, r.RoomNumber, r.Type) {
			continue
		}
		if !matchesCategory(f.Type, r.Type) || !matchesCategory(f.State, r.State) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type InventoryFilter struct {
	Search string `form:"search"`
	Type   string `form:"type"`
	Stock  string `form:"stock"`
}

func (f InventoryFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		NormalizeFilter(f.Type) != FilterAll ||
		NormalizeFilter(f.Stock) != FilterAll
}

// StockLevel classifies a stock count as low, normal or high.
func StockLevel(stock int) string {
	switch {
	case stock < lowStockThreshold:
		return StockLow
	case stock < highStockThreshold:
		return StockNormal
	default:
		return StockHigh
	}
}

func FilterInventory(items []models.InventoryItem, f InventoryFilter) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(items))
	for _, it := range items {
		if !matchesSearch(f.Search, it.Name, it.Type) {
			continue
		}
		if !matchesCategory(f.Type, it.Type) {
			continue
		}
		if level := NormalizeFilter(f.Stock); level != FilterAll && StockLevel(it.Stock) != level {
			continue
		}
		out = append(out, it)
	}
	return out
}

type BookingFilter struct {
	Search string
	State  string
	From   *time.Time
	To     *time.Time
}

func (f BookingFilter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		NormalizeFilter(f.State) != FilterAll ||
		f.From != nil || f.To != nil
}

// inRange applies the date filter. A booking is kept when it intersects the selected range or
// fully contains it.
func (f BookingFilter) inRange(b models.Booking) bool {
	switch {
	case f.From != nil && f.To != nil:
		return Overlaps(b.StartDate, b.EndDate, *f.From, *f.To, false) ||
			Contains(b.StartDate, b.EndDate, *f.From, *f.To)
	case f.From != nil:
		return !b.EndDate.Before(*f.From)
	case f.To != nil:
		return !b.StartDate.After(*f.To)
	}
	return true
}

func FilterBookings(bookings []models.BookingWithRelations, f BookingFilter) []models.BookingWithRelations {
	out := make([]models.BookingWithRelations, 0, len(bookings))
	for _, b := range bookings {
		if !matchesSearch(f.Search, b.State, b.CustomerName, b.RoomNumber) {
			continue
		}
		if !matchesCategory(f.State, b.State) {
			continue
		}
		if !f.inRange(b.Booking) {
			continue
		}
		out = append(out, b)
	}
	return out
}
