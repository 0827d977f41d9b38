// Package model defines the domain data shared across the app: the user's
// download options, fetched video metadata, progress events and the single
// download job with its state transitions.
package model
