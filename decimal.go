//go:build decimal

package memcomparable

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Decimal is an extended decimal value: a normalized arbitrary-precision
// signed decimal, plus the three values no plain decimal can represent.
// Encoded byte order is NaN < NegInf < every negative normalized < Zero <
// every positive normalized < Inf.
type Decimal struct {
	kind decimalKind
	n    decimal.Decimal
}

type decimalKind uint8

const (
	decimalNormalized decimalKind = iota
	decimalNegInf
	decimalInf
	decimalNaN
)

// DecimalNaN is the canonical not-a-number decimal value.
var DecimalNaN = Decimal{kind: decimalNaN}

// DecimalNegInf is negative infinity.
var DecimalNegInf = Decimal{kind: decimalNegInf}

// DecimalInf is positive infinity.
var DecimalInf = Decimal{kind: decimalInf}

// DecimalZero is the additive identity, a normalized zero.
var DecimalZero = DecimalFromDecimal(decimal.Zero)

// DecimalFromDecimal wraps a normalized finite decimal value.
func DecimalFromDecimal(n decimal.Decimal) Decimal {
	return Decimal{kind: decimalNormalized, n: n}
}

// String renders the decimal the way the original textual forms do:
// "NaN", "-Inf", "Inf", or the normalized value's own decimal string.
func (d Decimal) String() string {
	switch d.kind {
	case decimalNaN:
		return "NaN"
	case decimalNegInf:
		return "-Inf"
	case decimalInf:
		return "Inf"
	default:
		return d.n.String()
	}
}

// ParseDecimal parses "nan"/"NaN", "-inf"/"-Inf", "inf"/"Inf" as the
// corresponding non-finite Decimal, and anything else as a normalized
// decimal string.
func ParseDecimal(s string) (Decimal, error) {
	switch s {
	case "nan", "NaN":
		return DecimalNaN, nil
	case "-inf", "-Inf":
		return DecimalNegInf, nil
	case "inf", "Inf":
		return DecimalInf, nil
	default:
		n, err := decimal.NewFromString(s)
		if err != nil {
			return Decimal{}, err
		}
		return DecimalFromDecimal(n), nil
	}
}

// PutDecimal writes d using the flag-byte/centimal-mantissa encoding.
// Unlike every other value in this package, decimal bytes are written
// directly to the underlying sink rather than through FlipIO: the
// ordering property is intrinsic to the flag/mantissa layout, not
// achieved by bit-flipping.
func (s *Serializer) PutDecimal(d Decimal) error {
	switch d.kind {
	case decimalNaN:
		s.w.buf = append(s.w.buf, 0x06)
		return nil
	case decimalNegInf:
		s.w.buf = append(s.w.buf, 0x07)
		return nil
	case decimalInf:
		s.w.buf = append(s.w.buf, 0x23)
		return nil
	}
	if d.n.IsZero() {
		s.w.buf = append(s.w.buf, 0x15)
		return nil
	}

	exponent, significand := decimalExponentAndMantissa(d.n)
	if d.n.Sign() > 0 {
		switch {
		case exponent >= 11:
			s.w.buf = append(s.w.buf, 0x22, byte(exponent))
		case exponent >= 0:
			s.w.buf = append(s.w.buf, 0x17+byte(exponent))
		default:
			s.w.buf = append(s.w.buf, 0x16, ^byte(-exponent))
		}
		s.w.buf = append(s.w.buf, significand...)
	} else {
		switch {
		case exponent >= 11:
			s.w.buf = append(s.w.buf, 0x08, ^byte(exponent))
		case exponent >= 0:
			s.w.buf = append(s.w.buf, 0x13-byte(exponent))
		default:
			s.w.buf = append(s.w.buf, 0x14, byte(-exponent))
		}
		for _, b := range significand {
			s.w.buf = append(s.w.buf, ^b)
		}
	}
	return nil
}

// decimalExponentAndMantissa rewrites n's unsigned mantissa in base-100
// scientific form, returning the base-100 exponent and the packed
// significand bytes (least-significant-bit-as-continuation, most
// significant digit first). n must be non-zero.
func decimalExponentAndMantissa(n decimal.Decimal) (int, []byte) {
	m := new(big.Int).Abs(n.Coefficient())
	scale := int(n.Exponent()) * -1

	prec := len(m.Text(10))
	e10 := prec - scale
	var e100 int
	if e10 >= 0 {
		e100 = (e10 + 1) / 2
	} else {
		e100 = e10 / 2
	}
	digitNum := prec
	if e10 != 2*e100 {
		digitNum = prec + 1
	}

	ten := big.NewInt(10)
	for m.Sign() != 0 {
		r := new(big.Int).Mod(m, ten)
		if r.Sign() != 0 {
			break
		}
		m.Div(m, ten)
		digitNum--
	}
	if digitNum%2 == 1 {
		m.Mul(m, ten)
	}

	hundred := big.NewInt(100)
	q, r := new(big.Int), new(big.Int)
	var bytes []byte
	for m.Sign() != 0 {
		q.QuoRem(m, hundred, r)
		bytes = append(bytes, byte(r.Int64())*2+1)
		m.Set(q)
	}
	bytes[0]--
	for i, j := 0, len(bytes)-1; i < j; i, j = i+1, j-1 {
		bytes[i], bytes[j] = bytes[j], bytes[i]
	}
	return e100, bytes
}

// GetDecimal reads a decimal value encoded by PutDecimal.
func (d *Deserializer) GetDecimal() (Decimal, error) {
	flagByte, err := d.getRawByte()
	if err != nil {
		return Decimal{}, err
	}
	var exponent int
	switch {
	case flagByte == 0x06:
		return DecimalNaN, nil
	case flagByte == 0x07:
		return DecimalNegInf, nil
	case flagByte == 0x08:
		b, err := d.getRawByte()
		if err != nil {
			return Decimal{}, err
		}
		exponent = int(int8(^b))
	case flagByte >= 0x09 && flagByte <= 0x13:
		exponent = int(0x13 - int(flagByte))
	case flagByte == 0x14:
		b, err := d.getRawByte()
		if err != nil {
			return Decimal{}, err
		}
		exponent = -int(int8(b))
	case flagByte == 0x15:
		return DecimalZero, nil
	case flagByte == 0x16:
		b, err := d.getRawByte()
		if err != nil {
			return Decimal{}, err
		}
		exponent = -int(int8(^b))
	case flagByte >= 0x17 && flagByte <= 0x21:
		exponent = int(flagByte) - 0x17
	case flagByte == 0x22:
		b, err := d.getRawByte()
		if err != nil {
			return Decimal{}, err
		}
		exponent = int(int8(b))
	case flagByte == 0x23:
		return DecimalInf, nil
	default:
		return Decimal{}, &InvalidDecimalEncodingError{Value: flagByte}
	}

	neg := flagByte >= 0x07 && flagByte < 0x15
	mantissa := new(big.Int)
	mlen := 0
	hundred := big.NewInt(100)
	for {
		b, err := d.getRawByte()
		if err != nil {
			return Decimal{}, err
		}
		if neg {
			b = ^b
		}
		x := b / 2
		mantissa.Mul(mantissa, hundred)
		mantissa.Add(mantissa, big.NewInt(int64(x)))
		mlen++
		if b&1 == 0 {
			break
		}
	}

	scale := (mlen - exponent) * 2
	if scale <= 0 {
		mantissa.Mul(mantissa, pow10(-scale))
		scale = 0
	} else if new(big.Int).Mod(mantissa, big.NewInt(10)).Sign() == 0 {
		mantissa.Div(mantissa, big.NewInt(10))
		scale--
	}

	if neg {
		mantissa.Neg(mantissa)
	}
	return DecimalFromDecimal(decimal.NewFromBigInt(mantissa, int32(-scale))), nil
}

// getRawByte reads a single byte directly from the underlying source,
// bypassing FlipIO: decimal bytes are never flip-transformed.
func (d *Deserializer) getRawByte() (byte, error) {
	if d.r.remaining() < 1 {
		return 0, ErrUnexpectedEOF
	}
	b := d.r.data[0]
	d.r.data = d.r.data[1:]
	return b, nil
}
