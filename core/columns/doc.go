// Package columns provides tolerant column lookup for delimited exports.
//
// Export headers drift ("Record ID", "record_id", "Airtable Record"), so
// required columns are located by a case-insensitive substring hint instead of
// an exact name. The first header cell, in header order, that contains the
// hint wins.
//
// A missing column is fatal for loading and is reported as a *NotFoundError,
// which matches ErrColumnNotFound under errors.Is.
package columns
