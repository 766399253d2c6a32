package services

import "hotel-admin/models"

type CustomerStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Pending  int `json:"pending"`
}

func CustomerStatsOf(customers []models.Customer) CustomerStats {
	st := CustomerStats{Total: len(customers)}
	for _, c := range customers {
		switch c.State {
		case models.CustomerActive:
			st.Active++
		case models.CustomerInactive:
			st.Inactive++
		case models.CustomerPending:
			st.Pending++
		}
	}
	return st
}

type RoomStats struct {
	Total         int            `json:"total"`
	Available     int            `json:"available"`
	Occupied      int            `json:"occupied"`
	Maintenance   int            `json:"maintenance"`
	TotalCapacity int            `json:"total_capacity"`
	TotalValue    float64        `json:"total_value"`
	AveragePrice  float64        `json:"average_price"`
	ByType        map[string]int `json:"by_type"`
}

func RoomStatsOf(rooms []models.Room) RoomStats {
	st := RoomStats{Total: len(rooms), ByType: map[string]int{}}
	for _, r := range rooms {
		switch r.State {
		case models.RoomAvailable:
			st.Available++
		case models.RoomOccupied:
			st.Occupied++
		case models.RoomMaintenance:
			st.Maintenance++
		}
		st.TotalCapacity += r.Capacity
		st.TotalValue += r.Price
		st.ByType[r.Type]++
	}
	if st.Total > 0 {
		st.AveragePrice = st.TotalValue / float64(st.Total)
	}
	return st
}

type InventoryStats struct {
	TotalItems       int            `json:"total_items"`
	TotalStock       int            `json:"total_stock"`
	LowStock         int            `json:"low_stock"`
	TotalValue       float64        `json:"total_value"`
	AverageUnitPrice float64        `json:"average_unit_price"`
	ByType           map[string]int `json:"by_type"`
}

func InventoryStatsOf(items []models.InventoryItem) InventoryStats {
	st := InventoryStats{TotalItems: len(items), ByType: map[string]int{}}
	var priceSum float64
	for _, it := range items {
		st.TotalStock += it.Stock
		if StockLevel(it.Stock) == StockLow {
			st.LowStock++
		}
		st.TotalValue += it.Value()
		priceSum += it.UnitPrice
		st.ByType[it.Type]++
	}
	if st.TotalItems > 0 {
		st.AverageUnitPrice = priceSum / float64(st.TotalItems)
	}
	return st
}

type BookingStats struct {
	Total     int     `json:"total"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Revenue   float64 `json:"revenue"` // confirmed bookings only
}

func BookingStatsOf(bookings []models.Booking) BookingStats {
	st := BookingStats{Total: len(bookings)}
	for _, b := range bookings {
		switch b.State {
		case models.BookingConfirmed:
			st.Confirmed++
			st.Revenue += b.TotalPrice
		case models.BookingCancelled:
			st.Cancelled++
		case models.BookingPending:
			st.Pending++
		case models.BookingCompleted:
			st.Completed++
		}
	}
	return st
}
