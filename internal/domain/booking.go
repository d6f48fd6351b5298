package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const PaymentStatusCompleted PaymentStatus = "completed"

type RefundStatus string

const RefundStatusProcessing RefundStatus = "processing"

type Passenger struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
}

// ServiceSelection holds the ancillary services requested with a booking.
// Zero values mean the service was not requested.
type ServiceSelection struct {
	Baggage   int  `json:"baggage,omitempty"`
	Meals     int  `json:"meals,omitempty"`
	Lounge    int  `json:"lounge,omitempty"`
	Insurance bool `json:"insurance,omitempty"`
}

// Pricing is computed once at creation and never recomputed, not even on
// reschedule. All amounts are integer cents.
type Pricing struct {
	FlightPriceCents   int64 `json:"flightPrice"`
	ServicesPriceCents int64 `json:"servicesPrice"`
	TotalPriceCents    int64 `json:"totalPrice"`
}

type Booking struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	FlightID         string           `json:"flightId"`
	Flight           FlightSnapshot   `json:"flight"`
	Passengers       []Passenger      `json:"passengers"`
	FareClass        FareClass        `json:"fareClass"`
	Seats            []*string        `json:"seats"`
	Services         ServiceSelection `json:"services"`
	Pricing          Pricing          `json:"pricing"`
	Status           BookingStatus    `json:"status"`
	BookingReference string           `json:"bookingReference"`
	PaymentStatus    PaymentStatus    `json:"paymentStatus"`
	RefundStatus     RefundStatus     `json:"refundStatus,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	CancelledAt      *time.Time       `json:"cancelledAt,omitempty"`
	RescheduledAt    *time.Time       `json:"rescheduledAt,omitempty"`
}

// Clone returns a deep copy so repository reads never alias stored records.
func (b *Booking) Clone() *Booking {
	c := *b
	if b.Passengers != nil {
		c.Passengers = make([]Passenger, len(b.Passengers))
		copy(c.Passengers, b.Passengers)
	}
	if b.Seats != nil {
		c.Seats = make([]*string, len(b.Seats))
		for i, s := range b.Seats {
			if s != nil {
				v := *s
				c.Seats[i] = &v
			}
		}
	}
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	if b.RescheduledAt != nil {
		t := *b.RescheduledAt
		c.RescheduledAt = &t
	}
	return &c
}
