// Package report opens and moderates reports against products, businesses
// and users.
//
// Opening a report resolves the account that owns the reported target and
// fans out notices: the administrator always hears about it, the owner does
// when they are not the reporter, and the reporter gets a confirmation.
package report
