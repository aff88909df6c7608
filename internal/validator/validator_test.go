package validator_test

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	playground "github.com/go-playground/validator/v10"

	"moneta/internal/validator"
)

func init() {
	validator.Register()
}

func engine(t *testing.T) *playground.Validate {
	t.Helper()
	v, ok := binding.Validator.Engine().(*playground.Validate)
	if !ok {
		t.Fatal("expected gin's default validator engine")
	}
	return v
}

// Every custom tag must resolve after Register; an unregistered tag makes the
// engine panic on first use instead of returning a validation error.
func TestRegister_AllTagsResolve(t *testing.T) {
	v := engine(t)

	cases := []struct {
		name    string
		payload interface{}
		valid   bool
	}{
		{"valid currency", struct {
			Currency string `binding:"iso4217"`
		}{"EUR"}, true},
		{"unknown currency", struct {
			Currency string `binding:"iso4217"`
		}{"NOPE"}, false},
		{"valid hex color", struct {
			Color string `binding:"hex_color"`
		}{"#22c55e"}, true},
		{"color keyword rejected", struct {
			Color string `binding:"hex_color"`
		}{"green"}, false},
		{"valid transaction type", struct {
			Type string `binding:"transaction_type"`
		}{"income"}, true},
		{"transfer rejected", struct {
			Type string `binding:"transaction_type"`
		}{"transfer"}, false},
		{"valid category type", struct {
			Type string `binding:"category_type"`
		}{"expense"}, true},
		{"unknown category type", struct {
			Type string `binding:"category_type"`
		}{"other"}, false},
		{"valid theme", struct {
			Theme string `binding:"theme"`
		}{"dark"}, true},
		{"unknown theme", struct {
			Theme string `binding:"theme"`
		}{"neon"}, false},
		{"valid window", struct {
			Window string `binding:"time_window"`
		}{"month"}, true},
		{"unknown window", struct {
			Window string `binding:"time_window"`
		}{"quarter"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := v.Struct(c.payload)
			if c.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !c.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
