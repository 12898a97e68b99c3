// Package platform contains OS and filesystem integration: reading and writing
// .lang vocabulary files with platform line endings, atomic saves, and the
// default directories used by the file dialogs.
package platform
