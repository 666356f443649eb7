package constants

// MaxNoteLen bounds note length at the input boundary. The store itself does
// not enforce it.
const MaxNoteLen = 250

// DefaultDataFile is the default storage location under the user home.
const DefaultDataFile = "~/.config/habittrack/habittrack.db"

// ExportFilePrefix is the default backup file name prefix.
const ExportFilePrefix = "habit-tracker-backup-"

// ExportFileExt is the backup file extension.
const ExportFileExt = ".habittrack"
