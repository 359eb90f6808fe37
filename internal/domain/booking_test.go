package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer Customer
		valid    bool
	}{
		{name: "name only", customer: Customer{Name: "Jana"}, valid: true},
		{name: "full", customer: Customer{Name: "Jana", Email: "jana@example.com", Phone: "+420 777-123-456"}, valid: true},
		{name: "blank name", customer: Customer{Name: "  "}},
		{name: "long name", customer: Customer{Name: strings.Repeat("я", MaxCustomerNameLength+1)}},
		{name: "max name", customer: Customer{Name: strings.Repeat("я", MaxCustomerNameLength)}, valid: true},
		{name: "bad email", customer: Customer{Name: "Jana", Email: "jana@"}},
		{name: "letters in phone", customer: Customer{Name: "Jana", Phone: "777 abc"}},
		{name: "short phone", customer: Customer{Name: "Jana", Phone: "123"}},
		{name: "plus in the middle", customer: Customer{Name: "Jana", Phone: "777+123456"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.customer.Validate()
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidCustomer)
		})
	}
}

func TestCustomer_Normalized(t *testing.T) {
	c := Customer{Name: " Jana ", Email: " jana@example.com", Phone: "777 123 456 "}.Normalized()
	assert.Equal(t, Customer{Name: "Jana", Email: "jana@example.com", Phone: "777 123 456"}, c)
}

func TestBooking_Duration(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	b := &Booking{Start: start, End: start.Add(90 * time.Minute)}
	assert.Equal(t, 90*time.Minute, b.Duration())
}
