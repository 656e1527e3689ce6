// Package ports names what the board engine needs from the outside and what
// it offers to it.
//
// BoardService is what the HTTP handlers and the terminal UI drive.
// LeadClient and ProfileClient are the lead API as the engine sees it, served
// by the ACL adapter. HealthRegistry and HealthChecker back the readiness
// endpoint. Mocks of every port live in the top-level mocks package.
package ports
