package cluster

import (
	"errors"
	"fmt"
)

// The generation errors below are contract violations: upstream request
// validation should make them impossible. They are still returned as distinct
// error values so callers can translate them instead of handing out a wrong
// descriptor.

// NewUnknownVendor creates an error for a vendor that is not in the catalog.
func NewUnknownVendor(vendor string) error {
	return unknownVendor{fmt.Errorf("unknown vendor: %q", vendor)}
}

type unknownVendor struct{ error }

// IsUnknownVendor returns true if err was caused by a vendor outside the catalog and false otherwise.
func IsUnknownVendor(err error) bool {
	var e unknownVendor
	return errors.As(err, &e)
}

// NewUnknownVersion creates an error for an OCP version that is not in the catalog.
func NewUnknownVersion(version string) error {
	return unknownVersion{fmt.Errorf("unknown OCP version: %q", version)}
}

type unknownVersion struct{ error }

// IsUnknownVersion returns true if err was caused by an OCP version outside the catalog and false otherwise.
func IsUnknownVersion(err error) bool {
	var e unknownVersion
	return errors.As(err, &e)
}

// NewEmptyNodePools creates an error for a generation request without node pools.
func NewEmptyNodePools() error {
	return emptyNodePools{errors.New("at least one node pool is required")}
}

type emptyNodePools struct{ error }

// IsEmptyNodePools returns true if err was caused by a request without node pools and false otherwise.
func IsEmptyNodePools(err error) bool {
	var e emptyNodePools
	return errors.As(err, &e)
}
