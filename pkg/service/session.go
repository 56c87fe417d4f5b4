package service

import "strings"

// SessionContext is the explicit per-request session state. It is created by
// the auth middleware when a request comes in and discarded with the request;
// nothing about the current company lives in globals.
type SessionContext struct {
	Login   string
	Company string // empty = internal staff, may access every company
}

// CanAccess reports whether the session may operate on the given company.
func (s SessionContext) CanAccess(company string) bool {
	if s.Company == "" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(s.Company), strings.TrimSpace(company))
}
