// Package response holds the Courierist response DTOs.
package response

import (
	"saasconnector/pkg/mapping"
)

// OrderCommon carries the fields shared by every order shape.
type OrderCommon struct {
	ID         *int
	Code       *string // tracking number
	Price      *float64
	CreatedAt  *string // YYYY-MM-DD
	EstimateAt *string // YYYY-MM-DD
	Status     *int
}

var orderCommonSchema = mapping.NewSchema(
	mapping.Int("order", func(o *OrderCommon) **int { return &o.ID }),
	mapping.String("code", func(o *OrderCommon) **string { return &o.Code }),
	mapping.Float("price", func(o *OrderCommon) **float64 { return &o.Price }),
	mapping.String("created_at", func(o *OrderCommon) **string { return &o.CreatedAt }),
	mapping.String("estimate_at", func(o *OrderCommon) **string { return &o.EstimateAt }),
	mapping.Int("status", func(o *OrderCommon) **int { return &o.Status }),
)

// Location is a route point with its delivery progress.
type Location struct {
	Address   *string
	Status    *int
	StatusAt  *string
	Latitude  *float64
	Longitude *float64
	Position  *int
}

var locationSchema = mapping.NewSchema(
	mapping.String("address", func(l *Location) **string { return &l.Address }),
	mapping.Int("status", func(l *Location) **int { return &l.Status }),
	mapping.String("status_at", func(l *Location) **string { return &l.StatusAt }),
	mapping.Float("latitude", func(l *Location) **float64 { return &l.Latitude }),
	mapping.Float("longitude", func(l *Location) **float64 { return &l.Longitude }),
	mapping.Int("position", func(l *Location) **int { return &l.Position }),
)

func (l Location) MarshalJSON() ([]byte, error) { return locationSchema.Marshal(&l) }

func (l *Location) UnmarshalJSON(data []byte) error { return locationSchema.Unmarshal(data, l) }

// Order is a created or fetched order.
type Order struct {
	OrderCommon
	Pod       *int
	StatusAt  *string
	Locations []Location
}

var orderSchema = mapping.Embed(orderCommonSchema, func(o *Order) *OrderCommon { return &o.OrderCommon }).With(
	mapping.Int("pod", func(o *Order) **int { return &o.Pod }),
	mapping.String("status_at", func(o *Order) **string { return &o.StatusAt }),
	mapping.Slice("locations", locationSchema, func(o *Order) *[]Location { return &o.Locations }),
)

func (o Order) MarshalJSON() ([]byte, error) { return orderSchema.Marshal(&o) }

func (o *Order) UnmarshalJSON(data []byte) error { return orderSchema.Unmarshal(data, o) }

// OrderShort is an entry of the order list.
type OrderShort struct {
	OrderCommon
}

var orderShortSchema = mapping.Embed(orderCommonSchema, func(o *OrderShort) *OrderCommon { return &o.OrderCommon })

func (o OrderShort) MarshalJSON() ([]byte, error) { return orderShortSchema.Marshal(&o) }

func (o *OrderShort) UnmarshalJSON(data []byte) error { return orderShortSchema.Unmarshal(data, o) }

// OrderCost is the quoted price of a route.
type OrderCost struct {
	Price    *float64
	Distance *float64 // km
	Duration *int     // minutes
}

var orderCostSchema = mapping.NewSchema(
	mapping.Float("price", func(o *OrderCost) **float64 { return &o.Price }),
	mapping.Float("distance", func(o *OrderCost) **float64 { return &o.Distance }),
	mapping.Int("duration", func(o *OrderCost) **int { return &o.Duration }),
)

func (o OrderCost) MarshalJSON() ([]byte, error) { return orderCostSchema.Marshal(&o) }

func (o *OrderCost) UnmarshalJSON(data []byte) error { return orderCostSchema.Unmarshal(data, o) }
