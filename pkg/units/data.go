package units

import "github.com/polisai/measure/pkg/domain"

// DecimalDataUnit enumerates data sizes with decimal (SI) prefixes.
type DecimalDataUnit int

const (
	Bit DecimalDataUnit = iota
	Byte
	Kilobyte
	Megabyte
	Gigabyte
	Terabyte
	Petabyte
)

// DecimalData is the family of every DecimalDataUnit.
var DecimalData = domain.NewFamily("decimal-data", domain.Data)

func (u DecimalDataUnit) info() unitInfo {
	switch u {
	case Bit:
		return unitInfo{"bit", "bit", "bit", domain.SystemSI}
	case Byte:
		return unitInfo{"B", "B", "byte", domain.SystemSI}
	case Kilobyte:
		return unitInfo{"kB", "kB", "kilobyte", domain.SystemSI}
	case Megabyte:
		return unitInfo{"MB", "MB", "megabyte", domain.SystemSI}
	case Gigabyte:
		return unitInfo{"GB", "GB", "gigabyte", domain.SystemSI}
	case Terabyte:
		return unitInfo{"TB", "TB", "terabyte", domain.SystemSI}
	case Petabyte:
		return unitInfo{"PB", "PB", "petabyte", domain.SystemSI}
	}
	return unknownUnit
}

func (u DecimalDataUnit) Dimension() *domain.Dimension { return domain.Data }
func (u DecimalDataUnit) Family() *domain.Family { return DecimalData }
func (u DecimalDataUnit) System() domain.UnitSystem { return u.info().system }
func (u DecimalDataUnit) Name() string { return u.info().name }
func (u DecimalDataUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u DecimalDataUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// DecimalDataUnits lists the DecimalData family in ascending magnitude.
func DecimalDataUnits() []domain.Unit {
	return []domain.Unit{Bit, Byte, Kilobyte, Megabyte, Gigabyte, Terabyte, Petabyte}
}

// BinaryDataUnit enumerates data sizes with binary (IEC) prefixes.
type BinaryDataUnit int

const (
	Kibibyte BinaryDataUnit = iota
	Mebibyte
	Gibibyte
	Tebibyte
	Pebibyte
)

// BinaryData is the family of every BinaryDataUnit.
var BinaryData = domain.NewFamily("binary-data", domain.Data)

func (u BinaryDataUnit) info() unitInfo {
	switch u {
	case Kibibyte:
		return unitInfo{"KiB", "KiB", "kibibyte", domain.SystemIEC}
	case Mebibyte:
		return unitInfo{"MiB", "MiB", "mebibyte", domain.SystemIEC}
	case Gibibyte:
		return unitInfo{"GiB", "GiB", "gibibyte", domain.SystemIEC}
	case Tebibyte:
		return unitInfo{"TiB", "TiB", "tebibyte", domain.SystemIEC}
	case Pebibyte:
		return unitInfo{"PiB", "PiB", "pebibyte", domain.SystemIEC}
	}
	return unknownUnit
}

func (u BinaryDataUnit) Dimension() *domain.Dimension { return domain.Data }
func (u BinaryDataUnit) Family() *domain.Family { return BinaryData }
func (u BinaryDataUnit) System() domain.UnitSystem { return u.info().system }
func (u BinaryDataUnit) Name() string { return u.info().name }
func (u BinaryDataUnit) String() string { return u.Symbol(domain.NotationUnicode) }

func (u BinaryDataUnit) Symbol(n domain.Notation) string {
	return u.info().render(n)
}

// BinaryDataUnits lists the BinaryData family in ascending magnitude.
func BinaryDataUnits() []domain.Unit {
	return []domain.Unit{Kibibyte, Mebibyte, Gibibyte, Tebibyte, Pebibyte}
}
