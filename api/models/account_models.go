package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newAccountValidator()

func newAccountValidator() *validator.Validate {
	v := validator.New()
	// Report failing fields by their wire names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SimpleAccountRequest is the inbound creation request. The five required
// fields are validated for presence only; format checks are the broker's job.
type SimpleAccountRequest struct {
	Email                    string `json:"email" validate:"required"`
	Password                 string `json:"password" validate:"required"`
	Firstname                string `json:"firstname" validate:"required"`
	Lastname                 string `json:"lastname" validate:"required"`
	PhoneNumber              string `json:"phoneNumber" validate:"required"`
	Offer                    string `json:"offer"`
	CreateAsDepositedAccount bool   `json:"createAsDepositedAccount"`
}

// MissingFields returns every required field that is absent or empty, in
// declaration order. All of them are collected, not just the first.
func (r *SimpleAccountRequest) MissingFields() []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	var missing []string
	for _, fieldError := range validationErrors {
		missing = append(missing, fieldError.Field())
	}
	return missing
}

type PersonalDetails struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type ContactDetails struct {
	PhoneNumber string `json:"phoneNumber"`
}

// BrokerAccountPayload is the request shape the Match-Trade API expects.
type BrokerAccountPayload struct {
	Email                    string          `json:"email"`
	Password                 string          `json:"password"`
	Offer                    string          `json:"offer"`
	CreateAsDepositedAccount bool            `json:"createAsDepositedAccount"`
	PersonalDetails          PersonalDetails `json:"personalDetails"`
	ContactDetails           ContactDetails  `json:"contactDetails"`
}

// ToBrokerPayload builds the upstream payload from a validated request.
// Surrounding whitespace is trimmed from everything except the password,
// which passes through untouched. An absent or empty offer gets the default.
func (r *SimpleAccountRequest) ToBrokerPayload(defaultOffer string) BrokerAccountPayload {
	offer := r.Offer
	if offer == "" {
		offer = defaultOffer
	}

	return BrokerAccountPayload{
		Email:                    strings.TrimSpace(r.Email),
		Password:                 r.Password,
		Offer:                    offer,
		CreateAsDepositedAccount: r.CreateAsDepositedAccount,
		PersonalDetails: PersonalDetails{
			Firstname: strings.TrimSpace(r.Firstname),
			Lastname:  strings.TrimSpace(r.Lastname),
		},
		ContactDetails: ContactDetails{
			PhoneNumber: strings.TrimSpace(r.PhoneNumber),
		},
	}
}
