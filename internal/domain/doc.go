// Package domain holds the core entity types shared across services:
// campaigns, prospects, outreach messages, and the send queue.
//
// Types here are persistence-agnostic. Repository implementations live in
// repository/postgres/; business rules live in the service/ packages.
package domain
