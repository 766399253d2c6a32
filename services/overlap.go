package services

import "time"

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] intersect. With sameDayTurnover the
// ranges are treated as half-open, so one stay may end on the instant the next one begins.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time, sameDayTurnover bool) bool {
	if sameDayTurnover {
		return aStart.Before(bEnd) && aEnd.After(bStart)
	}
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// Contains reports whether [outerStart, outerEnd] fully covers [innerStart, innerEnd].
func Contains(outerStart, outerEnd, innerStart, innerEnd time.Time) bool {
	return !outerStart.After(innerStart) && !outerEnd.Before(innerEnd)
}
