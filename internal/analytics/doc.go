// Package analytics derives balances, limits and aggregates from a wallet
// snapshot. Every function is pure; callers pass the clock and location.
package analytics
