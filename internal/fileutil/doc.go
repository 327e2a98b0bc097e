// Package fileutil holds filesystem primitives shared by the organizer: an
// atomic overwrite-replace move with a verified cross-device fallback.
package fileutil
