// Package campaign implements the dashboard surface: campaign lifecycle,
// manual prospect entry, generated message history, and send scheduling.
//
// The service layer holds the business rules; it depends on repository
// interfaces defined in this package and should never import from api/.
// Repository implementations live in repository/postgres/.
package campaign
