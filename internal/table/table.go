package table

// Table is an ordered list of rows, one per input code.
type Table []Row

// Generate builds the table for Codes.
func Generate() (Table, error) {
	return GenerateFor(Codes)
}

// GenerateFor builds one row per code, preserving input order.
func GenerateFor(codes []uint8) (Table, error) {
	t := make(Table, 0, len(codes))
	for _, code := range codes {
		row, err := BuildRow(code)
		if err != nil {
			return nil, err
		}
		t = append(t, row)
	}
	return t, nil
}
