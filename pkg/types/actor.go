package types

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Field limits. The birth year upper bound is the current calendar year,
// read from the clock each time a birth year is assigned.
const (
	MinBirthYear  = 1820
	MinNameLength = 4
)

// countryPlaceholder is rendered by String when the country is absent.
const countryPlaceholder = "N/A"

// now is the clock used for the birth year upper bound. Tests override it.
var now = time.Now

// CurrentYear returns the upper bound for birth years at the time of the call.
func CurrentYear() int {
	return now().Year()
}

// Actor is a validated actor record. Fields are only reachable through the
// validating setters, so an Actor built with NewActor is never observable
// in an invalid state.
type Actor struct {
	id        int
	name      string
	birthYear int
	country   string
}

// ActorRecord is the plain serializable form of an Actor. Country is empty
// when absent.
type ActorRecord struct {
	ID        int    `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	BirthYear int    `json:"birth_year" yaml:"birth_year"`
	Country   string `json:"country,omitempty" yaml:"country,omitempty"`
}

// NewActor validates every field and returns the actor.
// Returns the first *ValidationError encountered; no Actor is built then.
func NewActor(id int, name string, birthYear int, country string) (*Actor, error) {
	a := &Actor{}
	if err := a.SetID(id); err != nil {
		return nil, err
	}
	if err := a.SetName(name); err != nil {
		return nil, err
	}
	if err := a.SetBirthYear(birthYear); err != nil {
		return nil, err
	}
	a.SetCountry(country)
	return a, nil
}

// ActorFromRecord builds an Actor from its serializable form, applying the
// same validation as NewActor.
func ActorFromRecord(r ActorRecord) (*Actor, error) {
	return NewActor(r.ID, r.Name, r.BirthYear, r.Country)
}

func (a *Actor) ID() int         { return a.id }
func (a *Actor) Name() string    { return a.name }
func (a *Actor) BirthYear() int  { return a.birthYear }
func (a *Actor) Country() string { return a.country }

// SetID assigns the id. Returns a *ValidationError wrapping ErrNegativeID
// if id is negative.
func (a *Actor) SetID(id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	a.id = id
	return nil
}

// SetName assigns the name verbatim; it is not trimmed.
// Returns a *ValidationError wrapping ErrBlankName for empty or whitespace-only
// values and ErrNameTooShort for values under MinNameLength characters.
func (a *Actor) SetName(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	a.name = name
	return nil
}

// SetBirthYear assigns the birth year. Returns a *ValidationError wrapping
// ErrBirthYearOutOfRange unless MinBirthYear <= year <= CurrentYear().
func (a *Actor) SetBirthYear(year int) error {
	if err := checkBirthYear(year); err != nil {
		return err
	}
	a.birthYear = year
	return nil
}

// SetCountry assigns the country verbatim. An empty string clears it.
func (a *Actor) SetCountry(country string) {
	a.country = country
}

// Validate re-checks every field. It catches actors that did not come
// from NewActor, such as a zero-value Actor{}.
func (a *Actor) Validate() error {
	if err := checkID(a.id); err != nil {
		return err
	}
	if err := checkName(a.name); err != nil {
		return err
	}
	return checkBirthYear(a.birthYear)
}

// Record returns the serializable form of the actor.
func (a *Actor) Record() ActorRecord {
	return ActorRecord{
		ID:        a.id,
		Name:      a.name,
		BirthYear: a.birthYear,
		Country:   a.country,
	}
}

func (a *Actor) String() string {
	country := a.country
	if country == "" {
		country = countryPlaceholder
	}
	return fmt.Sprintf("Id: %d, Name: %s, Birthyear: (%d), Country: %s", a.id, a.name, a.birthYear, country)
}

// MarshalJSON encodes the actor as its ActorRecord.
func (a *Actor) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Record())
}

// UnmarshalJSON decodes an ActorRecord and validates it. On failure the
// receiver is left unchanged.
func (a *Actor) UnmarshalJSON(data []byte) error {
	var r ActorRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	decoded, err := ActorFromRecord(r)
	if err != nil {
		return err
	}
	*a = *decoded
	return nil
}

func checkID(id int) error {
	if id < 0 {
		return validationError("id", id, ErrNegativeID)
	}
	return nil
}

func checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return validationError("name", name, ErrBlankName)
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return validationError("name", name, ErrNameTooShort)
	}
	return nil
}

func checkBirthYear(year int) error {
	if year < MinBirthYear || year > CurrentYear() {
		return validationError("birth_year", year, ErrBirthYearOutOfRange)
	}
	return nil
}
