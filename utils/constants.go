// File: utils/constants.go
package utils

import "time"

// ReminderGuardPrefix is the prefix used for Redis reminder dispatch guard keys.
const ReminderGuardPrefix = "reminder:dispatched:"

// ReminderGuardTTL is the time-to-live for dispatch guard entries. Bookings are
// only scanned inside the 48h horizon, so 72h comfortably outlives every band.
const ReminderGuardTTL = 72 * time.Hour
