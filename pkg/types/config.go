package types

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config holds backend selection and parameters for opening a snapshot store.
type Config struct {
	Backend string `json:"backend" yaml:"backend" mapstructure:"backend" validate:"required,oneof=jsonl sqlite postgres"`
	DataDir string `json:"data_dir" yaml:"data_dir" mapstructure:"data_dir"`
	DSN     string `json:"dsn,omitempty" yaml:"dsn,omitempty" mapstructure:"dsn" validate:"required_if=Backend postgres"`
}

// Supported backend names.
const (
	BackendJSONL    = "jsonl"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrDSNRequired    = errors.New("dsn is required for the postgres backend")
)

var validate = validator.New()

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := verrs[0]
	switch {
	case fe.Field() == "Backend" && fe.Tag() == "required":
		return ErrBackendEmpty
	case fe.Field() == "Backend":
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	case fe.Field() == "DSN":
		return ErrDSNRequired
	default:
		return err
	}
}
