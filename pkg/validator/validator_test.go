package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type messageRequest struct {
	Content string `json:"content" validate:"notblank,max=10"`
}

type cartRequest struct {
	InventoryID string  `validate:"required_without=Name"`
	Name        string  `validate:"required_without=InventoryID"`
	Price       float64 `validate:"gte=0"`
	Delta       int     `validate:"ne=0"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantErr string
	}{
		{"valid message", messageRequest{Content: "hello"}, ""},
		{"blank message", messageRequest{Content: "   "}, "Content must not be blank"},
		{"long message", messageRequest{Content: "hello world!"}, "Content must be at most 10 characters"},
		{"inventory id only", cartRequest{InventoryID: "inv-1", Delta: 1}, ""},
		{"neither id nor name", cartRequest{Delta: 1}, "InventoryID is required when Name is missing"},
		{"negative price", cartRequest{Name: "Milk", Price: -1, Delta: 1}, "Price must be greater than or equal to 0"},
		{"zero delta", cartRequest{Name: "Milk"}, "Delta must not be 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

type filterRequest struct {
	Facet string `validate:"required,facet"`
}

func TestFacetValidation(t *testing.T) {
	tests := []struct {
		facet   string
		wantErr string
	}{
		{"product", ""},
		{"region", ""},
		{"plant", ""},
		{"sku", ""},
		{"supplier", ""},
		{"colour", "Facet must be a filter facet"},
		{"Region", "Facet must be a filter facet"},
		{"", "Facet is required"},
	}

	for _, tt := range tests {
		t.Run(tt.facet, func(t *testing.T) {
			err := Validate(filterRequest{Facet: tt.facet})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRegisterValidation(t *testing.T) {
	v := New()
	require.NoError(t, v.RegisterValidation("eu_region", func(fl validator.FieldLevel) bool {
		return fl.Field().String() == "EMEA"
	}))

	assert.NoError(t, v.ValidateVar("EMEA", "eu_region"))

	err := v.ValidateVar("APAC", "eu_region")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed validation for 'eu_region'")

	assert.Error(t, v.RegisterValidation("", func(validator.FieldLevel) bool { return true }))
}

func TestMustRegisterPanicsOnBadTag(t *testing.T) {
	assert.PanicsWithValue(t, `validator: register "": function Key cannot be empty`, func() {
		mustRegister(validator.New(), "", func(validator.FieldLevel) bool { return true })
	})
	assert.NotPanics(t, func() {
		mustRegister(validator.New(), "notblank", func(validator.FieldLevel) bool { return true })
	})
}
