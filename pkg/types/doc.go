// Package types defines the Actor entity, its validation rules, the query
// model used by repositories, backend configuration and the standard error
// values shared by every package in the module.
package types
