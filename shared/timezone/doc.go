// Package timezone provides timezone utilities for the application.
//
// Booking check-in/check-out dates are parsed and formatted in the
// application timezone so that the nightly billing unit lines up with the
// hotel's calendar day rather than the server's.
//
// The timezone is configured via the APP_TIMEZONE environment variable and
// is initialized when the package is imported. Use standard IANA timezone
// database names ("UTC", "Asia/Jakarta", "America/New_York").
package timezone
