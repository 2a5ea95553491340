package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// Contains returns true when date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// String formats the range as "From to To".
func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
