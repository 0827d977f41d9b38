// Package platform contains OS integration and external tooling glue:
// filesystem helpers, transcoder detection, thumbnail loading and
// revealing downloads in the system file manager.
package platform
