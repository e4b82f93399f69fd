// Package form validates raw product form input before it reaches the stores.
//
// The stores accept any input, so every create and update must pass through
// Parse first. On failure nothing is dispatched and each field gets its own
// message.
package form

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vyrodovalexey/catalog-cart/internal/model"
)

// Field error messages.
const (
	MsgNameRequired     = "Name is required"
	MsgPriceRequired    = "Price is required"
	MsgPriceInvalid     = "Price must be a positive number"
	MsgQuantityRequired = "Quantity is required"
	MsgQuantityInvalid  = "Quantity must be a positive integer"
	MsgCategoryRequired = "Category is required"
)

// ProductForm is the raw text of a product form submission.
type ProductForm struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
}

// FieldErrors holds one message per form field. Empty means valid.
type FieldErrors struct {
	Name     string `json:"name,omitempty"`
	Price    string `json:"price,omitempty"`
	Category string `json:"category,omitempty"`
	Quantity string `json:"quantity,omitempty"`
}

// Empty reports whether no field has an error.
func (e FieldErrors) Empty() bool {
	return e == FieldErrors{}
}

// ValidationError is returned by Parse when at least one field is invalid.
type ValidationError struct {
	Fields FieldErrors
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	for _, msg := range []string{e.Fields.Name, e.Fields.Price, e.Fields.Quantity, e.Fields.Category} {
		if msg != "" {
			parts = append(parts, msg)
		}
	}
	return "invalid product form: " + strings.Join(parts, "; ")
}

// AsValidationError unwraps err into a *ValidationError.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Parse validates the form and converts it into a trimmed ProductInput.
func Parse(f ProductForm) (model.ProductInput, error) {
	var (
		fieldErrs FieldErrors
		input     model.ProductInput
	)

	input.Name = strings.TrimSpace(f.Name)
	if input.Name == "" {
		fieldErrs.Name = MsgNameRequired
	}

	input.Category = strings.TrimSpace(f.Category)
	if input.Category == "" {
		fieldErrs.Category = MsgCategoryRequired
	}

	price, msg := parsePrice(f.Price)
	input.Price = price
	fieldErrs.Price = msg

	quantity, msg := parseQuantity(f.Quantity)
	input.Quantity = quantity
	fieldErrs.Quantity = msg

	if fieldErrs.Empty() {
		fieldErrs = structErrors(input)
	}

	if !fieldErrs.Empty() {
		return model.ProductInput{}, &ValidationError{Fields: fieldErrs}
	}
	return input, nil
}

// FromProduct fills a form with the current values of a product for editing.
func FromProduct(p model.Product) ProductForm {
	return ProductForm{
		Name:     p.Name,
		Price:    strconv.FormatFloat(p.Price, 'f', -1, 64),
		Category: p.Category,
		Quantity: strconv.Itoa(p.Quantity),
	}
}

func parsePrice(raw string) (float64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, MsgPriceRequired
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, MsgPriceInvalid
	}
	return price, ""
}

func parseQuantity(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, MsgQuantityRequired
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity <= 0 {
		return 0, MsgQuantityInvalid
	}
	return quantity, ""
}

// structErrors runs the struct tag rules of model.ProductInput and maps any
// failure onto the matching form field.
func structErrors(input model.ProductInput) FieldErrors {
	var fieldErrs FieldErrors

	err := validate.Struct(input)
	if err == nil {
		return fieldErrs
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		fieldErrs.Name = err.Error()
		return fieldErrs
	}

	for _, fe := range vErrs {
		switch fe.StructField() {
		case "Name":
			fieldErrs.Name = MsgNameRequired
		case "Price":
			fieldErrs.Price = MsgPriceInvalid
		case "Category":
			fieldErrs.Category = MsgCategoryRequired
		case "Quantity":
			fieldErrs.Quantity = MsgQuantityInvalid
		}
	}
	return fieldErrs
}
