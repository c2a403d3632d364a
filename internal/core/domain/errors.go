package domain

import "errors"

// ErrTenantNotCreated means the tenant insert returned no identifiable row,
// so no membership can be linked.
var ErrTenantNotCreated = errors.New("tenant creation returned no row")
