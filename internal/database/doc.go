// Package database provides connection pool management for the PostgreSQL
// database that stores aggregated record results.
package database
