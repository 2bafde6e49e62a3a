// Package users defines portal accounts, their 1:1 profile record and the
// registration form composing both.
package users
