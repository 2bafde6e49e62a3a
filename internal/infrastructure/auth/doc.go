// Package auth implements password hashing with bcrypt and signed session
// tokens with JWT.
package auth
