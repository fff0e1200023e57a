package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_Unmarshal(t *testing.T) {
	input := `{
		"order": 3051,
		"code": "CR-3051",
		"price": 450.75,
		"created_at": "2024-03-01",
		"estimate_at": "2024-03-02",
		"status": 2,
		"pod": 0,
		"status_at": "2024-03-01 12:30:00",
		"locations": [
			{"address": "Москва, Тверская 1", "status": 1, "latitude": 55.757, "longitude": 37.613, "position": 0},
			{"address": "Москва, Арбат 10", "status": 0, "position": 1}
		],
		"courier": {"name": "ignored"}
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(input), &o))

	assert.Equal(t, 3051, *o.ID)
	assert.Equal(t, "CR-3051", *o.Code)
	assert.Equal(t, 450.75, *o.Price)
	assert.Equal(t, 2, *o.Status)
	assert.Equal(t, 0, *o.Pod)
	require.Len(t, o.Locations, 2)
	assert.Equal(t, "Москва, Тверская 1", *o.Locations[0].Address)
	assert.Equal(t, 1, *o.Locations[1].Position)
	assert.Nil(t, o.Locations[1].Latitude)
}

func TestOrder_RoundTrip(t *testing.T) {
	input := `{"order":1,"code":"C1","price":100,"status":1,"pod":1,"status_at":"2024-03-01 10:00:00",` +
		`"locations":[{"address":"A","status":3,"status_at":"2024-03-01 11:00:00","latitude":55.1,"longitude":37.2,"position":0}]}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(input), &o))

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}

func TestOrderShort_List(t *testing.T) {
	input := `[{"order":1,"code":"C1","status":1},{"order":"2","code":"C2","price":"99.9"}]`

	var list []OrderShort
	require.NoError(t, json.Unmarshal([]byte(input), &list))

	require.Len(t, list, 2)
	assert.Equal(t, 1, *list[0].ID)
	assert.Equal(t, 2, *list[1].ID)
	assert.Equal(t, 99.9, *list[1].Price)
	assert.Nil(t, list[1].Status)
}

func TestOrderCost_RoundTrip(t *testing.T) {
	input := `{"price": 350, "distance": 12.4, "duration": 55}`

	var c OrderCost
	require.NoError(t, json.Unmarshal([]byte(input), &c))
	assert.Equal(t, 350.0, *c.Price)
	assert.Equal(t, 12.4, *c.Distance)
	assert.Equal(t, 55, *c.Duration)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
}
