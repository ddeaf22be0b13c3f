// Package bsdcksum implements the classic Unix file checksums: the BSD and
// System V algorithms of sum(1) and the CRC of POSIX cksum(1).
package bsdcksum

import "hash"

// Size16 is the size of a BSD or System V sum in bytes.
const Size16 = 2

// SizeCRC is the size of a POSIX cksum in bytes.
const SizeCRC = 4

type bsd struct {
	sum uint16
}

// NewBSD returns the 16-bit rotating checksum of BSD sum(1), also sum -r.
func NewBSD() hash.Hash32 {
	return &bsd{}
}

func (d *bsd) Write(p []byte) (int, error) {
	s := d.sum
	for _, b := range p {
		s = s>>1 | s<<15
		s += uint16(b)
	}
	d.sum = s
	return len(p), nil
}

func (d *bsd) Sum32() uint32       { return uint32(d.sum) }
func (d *bsd) Sum(b []byte) []byte { return appendUint16(b, d.sum) }
func (d *bsd) Reset()              { d.sum = 0 }
func (d *bsd) Size() int           { return Size16 }
func (d *bsd) BlockSize() int      { return 1 }

type sysv struct {
	total uint64
}

// NewSysV returns the 16-bit checksum of System V sum(1), also sum -s.
func NewSysV() hash.Hash32 {
	return &sysv{}
}

func (d *sysv) Write(p []byte) (int, error) {
	for _, b := range p {
		d.total += uint64(b)
	}
	return len(p), nil
}

func (d *sysv) Sum32() uint32 {
	s := uint32(d.total)
	r := s&0xffff + s>>16
	return r&0xffff + r>>16
}

func (d *sysv) Sum(b []byte) []byte { return appendUint16(b, uint16(d.Sum32())) }
func (d *sysv) Reset()              { d.total = 0 }
func (d *sysv) Size() int           { return Size16 }
func (d *sysv) BlockSize() int      { return 1 }

// crcTable is the MSB-first table for the CRC-32 polynomial 0x04C11DB7.
var crcTable = makeTable(0x04c11db7)

func makeTable(poly uint32) *[256]uint32 {
	t := new([256]uint32)
	for i := range t {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

func update(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crc<<8 ^ crcTable[byte(crc>>24)^b]
	}
	return crc
}

type posix struct {
	crc    uint32
	length uint64
}

// NewPOSIX returns the CRC of POSIX cksum(1): the input followed by its
// length in as few little-endian bytes as needed, complemented.
func NewPOSIX() hash.Hash32 {
	return &posix{}
}

func (d *posix) Write(p []byte) (int, error) {
	d.crc = update(d.crc, p)
	d.length += uint64(len(p))
	return len(p), nil
}

func (d *posix) Sum32() uint32 {
	crc := d.crc
	for n := d.length; n != 0; n >>= 8 {
		crc = update(crc, []byte{byte(n)})
	}
	return ^crc
}

func (d *posix) Sum(b []byte) []byte {
	s := d.Sum32()
	return append(b, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}

func (d *posix) Reset()         { d.crc, d.length = 0, 0 }
func (d *posix) Size() int      { return SizeCRC }
func (d *posix) BlockSize() int { return 1 }

func appendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}
