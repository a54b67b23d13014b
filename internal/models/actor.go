package model

import "microtask-market.com/microtask-market/internal/constants"

// Actor is the already-authenticated identity performing a workflow
// operation. Session issuance lives outside this service; the HTTP
// layer decodes the token into this value.
type Actor struct {
	ID     string               `json:"id"`
	Role   constants.Role       `json:"role"`
	Status constants.UserStatus `json:"status"`
}
