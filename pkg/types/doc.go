// Package types defines the domain records, search criteria, error kinds,
// and collaborator interfaces for the estatedesk data engine.
package types
