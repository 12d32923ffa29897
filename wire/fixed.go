package wire

// Fixed32Size returns the encoded size of a fixed32 value.
func Fixed32Size() int { return 4 }

// Fixed64Size returns the encoded size of a fixed64 value.
func Fixed64Size() int { return 8 }
