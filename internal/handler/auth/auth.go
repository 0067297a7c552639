// Package auth carries the unauthenticated account endpoints:
// registration, login, and the two halves of the password-reset flow.
package auth

import (
	"account-service/internal/service"
	"account-service/internal/store"
)

// stubbable seams for handler tests
var (
	hashPassword       = service.HashPassword
	createUser         = store.CreateUser
	getUserByEmail     = store.GetUserByEmail
	updateUserPassword = store.UpdateUserPassword
)
