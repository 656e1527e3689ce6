// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/lead, domain/caller,
// domain/board). This root package holds sentinel errors, validation types
// and the Action interface shared by all of them.
package domain
