// Package repository handles all interactions with the database.
//
// It contains the raw SQL queries and methods to fetch, persist, or update
// data, abstracting SQL away from the service layer. Reads select the full
// row and go through the entity mapper, so rows that still carry legacy
// column names resolve correctly before reconciliation has run.
package repository
