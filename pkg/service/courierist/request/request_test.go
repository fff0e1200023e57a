package request

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saasconnector/pkg/mapping"
)

func TestAssignment_RoundTrip(t *testing.T) {
	input := `{"price": 150.5, "type": 1}`

	var a Assignment
	require.NoError(t, json.Unmarshal([]byte(input), &a))

	require.NotNil(t, a.Price)
	require.NotNil(t, a.Type)
	assert.Equal(t, 150.5, *a.Price)
	assert.Equal(t, 1, *a.Type)

	out, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestOrder_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{
			name: "full order",
			json: `{
				"locations": [
					{
						"address": "Москва, Тверская 1",
						"contact_person": "Иван",
						"phone": "+79001234567",
						"date": "2024-03-01",
						"time_from": "10:00",
						"time_to": "14:00",
						"assignments": [{"price": 150.5, "type": 1}, {"price": 0, "type": 2}]
					},
					{"address": "Москва, Арбат 10", "comment": "домофон 12"}
				],
				"pod": 1,
				"comment": "fragile",
				"external_id": "CRM-1001"
			}`,
		},
		{
			name: "comment only",
			json: `{"comment": "call first"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Order
			require.NoError(t, json.Unmarshal([]byte(tt.json), &o))

			out, err := json.Marshal(o)
			require.NoError(t, err)
			assert.JSONEq(t, tt.json, string(out))
		})
	}
}

func TestOrder_EmbedsOrderCost(t *testing.T) {
	o := Order{
		OrderCost: OrderCost{
			Locations: []Location{{Address: mapping.Ptr("A")}, {Address: mapping.Ptr("B")}},
		},
		ExternalID: mapping.Ptr("CRM-7"),
	}

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations":[{"address":"A"},{"address":"B"}],"external_id":"CRM-7"}`, string(out))

	cost, err := json.Marshal(o.OrderCost)
	require.NoError(t, err)
	assert.JSONEq(t, `{"locations":[{"address":"A"},{"address":"B"}]}`, string(cost))
}

func TestLocation_IgnoresUnknownFields(t *testing.T) {
	var l Location
	require.NoError(t, json.Unmarshal([]byte(`{"address":"A","floor":3,"assignments":null}`), &l))

	assert.Equal(t, "A", *l.Address)
	assert.Nil(t, l.Assignments)
	assert.Nil(t, l.Phone)
}

func TestLocation_MarshalFailsOnInvalidAssignment(t *testing.T) {
	loc := Location{
		Address:     mapping.Ptr("A"),
		Assignments: []Assignment{{Price: mapping.Ptr(math.NaN())}},
	}

	out, err := json.Marshal(loc)

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Contains(t, err.Error(), "assignments")
}

func TestAssignment_RejectsOverflowingType(t *testing.T) {
	var a Assignment

	err := json.Unmarshal([]byte(`{"price":1,"type":1e19}`), &a)

	require.Error(t, err)
	assert.Nil(t, a.Type)
}
