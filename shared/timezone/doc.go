// Package timezone provides timezone utilities for the application.
//
// Usage Examples:
//
//  1. Current time in the app timezone:
//     now := timezone.Now()
//
//  2. Parsing a naive booking date and slot:
//     start, err := timezone.Wall("2025-03-01", "19:00", timezone.GetLocation())
//
//  3. Resolving a configured zone name:
//     loc := timezone.Load("Asia/Jakarta")
//
// Booking dates are naive local dates. They are only anchored to an instant
// when compared against "now" or exported to a calendar, and always in the
// location configured through APP_TIMEZONE.
package timezone
