// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds types that carry no business process of their own but appear
// in every aggregate: identifiers and monetary amounts. All kernel types are
// immutable value objects that must be created through their factory functions
// and validate themselves on construction.
package kernel
