package constants

const (
	CurrencyCode   = "KES"
	CurrencySymbol = "Ksh"

	// Display layouts
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"

	// Notifications carry East Africa Time without a zone marker.
	EATName   = "EAT"
	EATOffset = 3 * 60 * 60
)

// Interactive session commands
const (
	CmdQuit = "quit"
	CmdExit = "exit"
)

// StdinSource is the input path that selects standard input.
const StdinSource = "-"
