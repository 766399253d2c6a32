package models

// Stored state values. They are kept in Spanish because existing rows use them verbatim.
const (
	CustomerActive   = "activo"
	CustomerInactive = "inactivo"
	CustomerPending  = "pendiente"

	RoomAvailable   = "disponible"
	RoomOccupied    = "ocupada"
	RoomMaintenance = "mantenimiento"

	BookingPending   = "pendiente"
	BookingConfirmed = "confirmada"
	BookingCancelled = "cancelada"
	BookingCompleted = "completada"
)

var (
	CustomerStates = []string{CustomerActive, CustomerInactive, CustomerPending}
	RoomStates     = []string{RoomAvailable, RoomOccupied, RoomMaintenance}
	BookingStates  = []string{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}
)

func IsOneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
