package intake

// Record is one parsed line of the arrivals file.
type Record struct {
	Name    string
	Age     int
	Species string
}
