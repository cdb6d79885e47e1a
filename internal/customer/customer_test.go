package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForm_PhoneLength(t *testing.T) {
	f := Form{PhoneNumber: "12345"}
	ve := f.Validate()
	assert.Len(t, ve, 1)
	assert.Contains(t, ve, "phone_number")

	f.PhoneNumber = "123456"
	assert.True(t, f.Validate().OK())

	f.PhoneNumber = strings.Repeat("1", 21)
	assert.Contains(t, f.Validate(), "phone_number")
}

func TestForm_PhoneRequired(t *testing.T) {
	ve := Form{Name: "Ana"}.Validate()
	assert.Equal(t, "is required", ve["phone_number"])
}

func TestForm_OptionalFieldLimits(t *testing.T) {
	f := Form{
		PhoneNumber: "600123456",
		Name:        strings.Repeat("n", 81),
		Address:     strings.Repeat("a", 256),
		Notes:       strings.Repeat("x", 5000),
	}
	ve := f.Validate()
	assert.Len(t, ve, 2)
	assert.Contains(t, ve, "name")
	assert.Contains(t, ve, "address")

	f.Name = strings.Repeat("n", 80)
	f.Address = strings.Repeat("a", 255)
	assert.True(t, f.Validate().OK())
}

func TestForm_RoundTripsThroughEntity(t *testing.T) {
	f := Form{Name: "Ana", PhoneNumber: "600123456", Address: "Calle 1", Notes: "VIP"}
	c := f.ToCustomer()
	assert.Zero(t, c.ID)
	assert.Equal(t, f, FromCustomer(c))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Ana", Customer{Name: "Ana", PhoneNumber: "600"}.DisplayName())
	assert.Equal(t, "600", Customer{PhoneNumber: "600"}.DisplayName())
}

func TestFilter(t *testing.T) {
	list := []Customer{
		{ID: 1, Name: "Ana Pérez", PhoneNumber: "600111222"},
		{ID: 2, Name: "Luis", PhoneNumber: "611000000", Address: "Gran Vía 3"},
		{ID: 3, PhoneNumber: "622000000", Notes: "Prefers ANA's bakery"},
	}

	assert.Equal(t, list, Filter(list, ""))

	got := Filter(list, "ana")
	assert.Equal(t, []int64{1, 3}, ids(got))

	assert.Equal(t, []int64{2}, ids(Filter(list, "GRAN")))
	assert.Equal(t, []int64{1}, ids(Filter(list, "111")))
	assert.Empty(t, Filter(list, "nobody"))
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	list := []Customer{{ID: 1, Name: "a", PhoneNumber: "1"}, {ID: 2, Name: "b", PhoneNumber: "2"}}
	got := Filter(list, "b")
	got[0].Name = "changed"
	assert.Equal(t, "b", list[1].Name)
}

func ids(list []Customer) []int64 {
	out := make([]int64, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}
