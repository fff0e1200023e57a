// Package request holds the Courierist request DTOs.
package request

import (
	"saasconnector/pkg/mapping"
)

// Assignment is a job at a location: pick up, deliver or collect cash for a price.
type Assignment struct {
	Price *float64
	Type  *int
}

var assignmentSchema = mapping.NewSchema(
	mapping.Float("price", func(a *Assignment) **float64 { return &a.Price }),
	mapping.Int("type", func(a *Assignment) **int { return &a.Type }),
)

func (a Assignment) MarshalJSON() ([]byte, error) { return assignmentSchema.Marshal(&a) }

func (a *Assignment) UnmarshalJSON(data []byte) error { return assignmentSchema.Unmarshal(data, a) }

// Location is a route point.
type Location struct {
	Address       *string
	ContactPerson *string
	Phone         *string
	Comment       *string
	Date          *string // YYYY-MM-DD
	TimeFrom      *string // HH:MM
	TimeTo        *string // HH:MM
	Assignments   []Assignment
}

var locationSchema = mapping.NewSchema(
	mapping.String("address", func(l *Location) **string { return &l.Address }),
	mapping.String("contact_person", func(l *Location) **string { return &l.ContactPerson }),
	mapping.String("phone", func(l *Location) **string { return &l.Phone }),
	mapping.String("comment", func(l *Location) **string { return &l.Comment }),
	mapping.String("date", func(l *Location) **string { return &l.Date }),
	mapping.String("time_from", func(l *Location) **string { return &l.TimeFrom }),
	mapping.String("time_to", func(l *Location) **string { return &l.TimeTo }),
	mapping.Slice("assignments", assignmentSchema, func(l *Location) *[]Assignment { return &l.Assignments }),
)

func (l Location) MarshalJSON() ([]byte, error) { return locationSchema.Marshal(&l) }

func (l *Location) UnmarshalJSON(data []byte) error { return locationSchema.Unmarshal(data, l) }

// OrderCost asks for the price of a route.
type OrderCost struct {
	Locations []Location
	// Pod is 1 when the recipient pays on delivery.
	Pod *int
}

var orderCostSchema = mapping.NewSchema(
	mapping.Slice("locations", locationSchema, func(o *OrderCost) *[]Location { return &o.Locations }),
	mapping.Int("pod", func(o *OrderCost) **int { return &o.Pod }),
)

func (o OrderCost) MarshalJSON() ([]byte, error) { return orderCostSchema.Marshal(&o) }

func (o *OrderCost) UnmarshalJSON(data []byte) error { return orderCostSchema.Unmarshal(data, o) }

// Order creates a delivery for the route of OrderCost.
type Order struct {
	OrderCost
	Comment    *string
	ExternalID *string
}

var orderSchema = mapping.Embed(orderCostSchema, func(o *Order) *OrderCost { return &o.OrderCost }).With(
	mapping.String("comment", func(o *Order) **string { return &o.Comment }),
	mapping.String("external_id", func(o *Order) **string { return &o.ExternalID }),
)

func (o Order) MarshalJSON() ([]byte, error) { return orderSchema.Marshal(&o) }

func (o *Order) UnmarshalJSON(data []byte) error { return orderSchema.Unmarshal(data, o) }
