package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Int return a pointer to the input value
func Int(value int) *int {
	return &value
}

// Int64 return a pointer to the input value
func Int64(value int64) *int64 {
	return &value
}

// Uint16 return a pointer to the input value
func Uint16(value uint16) *uint16 {
	return &value
}

// Uint64 return a pointer to the input value
func Uint64(value uint64) *uint64 {
	return &value
}

// Bool return a pointer to the input value
func Bool(value bool) *bool {
	return &value
}

// Uint64Value dereferences p, zero when nil
func Uint64Value(p *uint64) uint64 {
	if p == nil {
		return 0
	}
	return *p
}

// StringValue dereferences p, empty when nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
