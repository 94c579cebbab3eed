package classifier

// Status is the tri-state availability classification for a product page.
type Status string

const (
	InStock    Status = "in_stock"
	OutOfStock Status = "out_of_stock"
	Unknown    Status = "unknown"
)

// ParseStatus maps a stored string back to a Status. Anything unrecognized
// becomes Unknown so stale or hand-edited state files never poison a run.
func ParseStatus(s string) Status {
	switch Status(s) {
	case InStock:
		return InStock
	case OutOfStock:
		return OutOfStock
	default:
		return Unknown
	}
}
