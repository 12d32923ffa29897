package wire

import (
	"fmt"
	"math"
)

func isVarintKind(k ScalarKind) bool {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindUint64, KindSint32, KindSint64, KindBool, KindEnum:
		return true
	default:
		return false
	}
}

func isFixed32Kind(k ScalarKind) bool {
	switch k {
	case KindFixed32, KindSfixed32, KindFloat:
		return true
	default:
		return false
	}
}

func isFixed64Kind(k ScalarKind) bool {
	switch k {
	case KindFixed64, KindSfixed64, KindDouble:
		return true
	default:
		return false
	}
}

func assignVarint(kind ScalarKind, raw uint64, dst any) error {
	switch kind {
	case KindInt32:
		p, ok := dst.(*int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = int32(raw)
	case KindInt64:
		p, ok := dst.(*int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = int64(raw)
	case KindUint32:
		p, ok := dst.(*uint32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = uint32(raw)
	case KindUint64:
		p, ok := dst.(*uint64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = raw
	case KindSint32:
		p, ok := dst.(*int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = DecodeZigZag32(raw)
	case KindSint64:
		p, ok := dst.(*int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = DecodeZigZag64(raw)
	case KindBool:
		p, ok := dst.(*bool)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = raw != 0
	case KindEnum:
		p, ok := dst.(*int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = int32(raw)
	default:
		return fmt.Errorf("wire: scalar kind %d is not a varint kind", kind)
	}
	return nil
}

func appendVarint(kind ScalarKind, raw uint64, dst any) error {
	switch kind {
	case KindInt32:
		p, ok := dst.(*[]int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, int32(raw))
	case KindInt64:
		p, ok := dst.(*[]int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, int64(raw))
	case KindUint32:
		p, ok := dst.(*[]uint32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, uint32(raw))
	case KindUint64:
		p, ok := dst.(*[]uint64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, raw)
	case KindSint32:
		p, ok := dst.(*[]int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, DecodeZigZag32(raw))
	case KindSint64:
		p, ok := dst.(*[]int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, DecodeZigZag64(raw))
	case KindBool:
		p, ok := dst.(*[]bool)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, raw != 0)
	case KindEnum:
		p, ok := dst.(*[]int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, int32(raw))
	default:
		return fmt.Errorf("wire: scalar kind %d is not a varint kind", kind)
	}
	return nil
}

func assignFixed32(kind ScalarKind, raw uint32, dst any) error {
	switch kind {
	case KindFixed32:
		p, ok := dst.(*uint32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = raw
	case KindSfixed32:
		p, ok := dst.(*int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = int32(raw)
	case KindFloat:
		p, ok := dst.(*float32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = math.Float32frombits(raw)
	default:
		return fmt.Errorf("wire: scalar kind %d is not a fixed32 kind", kind)
	}
	return nil
}

func appendFixed32(kind ScalarKind, raw uint32, dst any) error {
	switch kind {
	case KindFixed32:
		p, ok := dst.(*[]uint32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, raw)
	case KindSfixed32:
		p, ok := dst.(*[]int32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, int32(raw))
	case KindFloat:
		p, ok := dst.(*[]float32)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, math.Float32frombits(raw))
	default:
		return fmt.Errorf("wire: scalar kind %d is not a fixed32 kind", kind)
	}
	return nil
}

func assignFixed64(kind ScalarKind, raw uint64, dst any) error {
	switch kind {
	case KindFixed64:
		p, ok := dst.(*uint64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = raw
	case KindSfixed64:
		p, ok := dst.(*int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = int64(raw)
	case KindDouble:
		p, ok := dst.(*float64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = math.Float64frombits(raw)
	default:
		return fmt.Errorf("wire: scalar kind %d is not a fixed64 kind", kind)
	}
	return nil
}

func appendFixed64(kind ScalarKind, raw uint64, dst any) error {
	switch kind {
	case KindFixed64:
		p, ok := dst.(*[]uint64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, raw)
	case KindSfixed64:
		p, ok := dst.(*[]int64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, int64(raw))
	case KindDouble:
		p, ok := dst.(*[]float64)
		if !ok {
			return mismatchedDst(kind, dst)
		}
		*p = append(*p, math.Float64frombits(raw))
	default:
		return fmt.Errorf("wire: scalar kind %d is not a fixed64 kind", kind)
	}
	return nil
}

func mismatchedDst(kind ScalarKind, dst any) error {
	return fmt.Errorf("wire: destination %T does not match scalar kind %d", dst, kind)
}

// NumericFieldDecoder is the FieldDecoder variant bound to a field whose
// wire format is Varint, Fixed32, or Fixed64.
type NumericFieldDecoder struct {
	unsupportedSetters
	scanner  *Scanner
	format   WireFormat
	consumed bool
}

func newNumericFieldDecoder(s *Scanner, format WireFormat) *NumericFieldDecoder {
	return &NumericFieldDecoder{scanner: s, format: format}
}

func (d *NumericFieldDecoder) Consumed() bool { return d.consumed }

func (d *NumericFieldDecoder) DecodeSingular(kind ScalarKind, dst any) (bool, error) {
	switch d.format {
	case WireVarint:
		if !isVarintKind(kind) {
			return false, nil
		}
		raw, ok, err := d.scanner.getRawVarint()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, truncated(d.scanner.pos, "end of input reading varint field value")
		}
		if err := assignVarint(kind, raw, dst); err != nil {
			return false, err
		}
	case WireFixed32:
		if !isFixed32Kind(kind) {
			return false, nil
		}
		raw, err := d.scanner.readFixed32()
		if err != nil {
			return false, err
		}
		if err := assignFixed32(kind, raw, dst); err != nil {
			return false, err
		}
	case WireFixed64:
		if !isFixed64Kind(kind) {
			return false, nil
		}
		raw, err := d.scanner.readFixed64()
		if err != nil {
			return false, err
		}
		if err := assignFixed64(kind, raw, dst); err != nil {
			return false, err
		}
	default:
		return false, nil
	}
	d.consumed = true
	return true, nil
}

// DecodeRepeated and DecodePacked behave identically on a bare numeric
// field: protobuf requires decoders to accept an unpacked occurrence of a
// repeated scalar even when the field is declared packed, and vice versa,
// so a single scalar value here always contributes one element.
func (d *NumericFieldDecoder) DecodeRepeated(kind ScalarKind, dst any) (bool, error) {
	return d.decodeAppend(kind, dst)
}

func (d *NumericFieldDecoder) DecodePacked(kind ScalarKind, dst any) (bool, error) {
	return d.decodeAppend(kind, dst)
}

func (d *NumericFieldDecoder) decodeAppend(kind ScalarKind, dst any) (bool, error) {
	switch d.format {
	case WireVarint:
		if !isVarintKind(kind) {
			return false, nil
		}
		raw, ok, err := d.scanner.getRawVarint()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, truncated(d.scanner.pos, "end of input reading varint field value")
		}
		if err := appendVarint(kind, raw, dst); err != nil {
			return false, err
		}
	case WireFixed32:
		if !isFixed32Kind(kind) {
			return false, nil
		}
		raw, err := d.scanner.readFixed32()
		if err != nil {
			return false, err
		}
		if err := appendFixed32(kind, raw, dst); err != nil {
			return false, err
		}
	case WireFixed64:
		if !isFixed64Kind(kind) {
			return false, nil
		}
		raw, err := d.scanner.readFixed64()
		if err != nil {
			return false, err
		}
		if err := appendFixed64(kind, raw, dst); err != nil {
			return false, err
		}
	default:
		return false, nil
	}
	d.consumed = true
	return true, nil
}
