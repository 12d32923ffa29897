package wire

// BytesSize returns the encoded size of data as a length-delimited field
// payload: the varint length prefix plus the data itself.
func BytesSize(data []byte) int {
	return VarintSize(uint64(len(data))) + len(data)
}

// StringSize returns the encoded size of s as a length-delimited field
// payload.
func StringSize(s string) int {
	return BytesSize([]byte(s))
}
