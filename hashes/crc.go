// Package hashes computes the CRC checksums used for asset and save-data
// integrity checks. Each function takes the running value of a previous call,
// so data can be checksummed in pieces: CRC32(b, CRC32(a, 0)) equals
// CRC32(ab, 0).
package hashes

import "hash/crc32"

// CRC-8/MAXIM (Dallas 1-Wire): polynomial 0x31, reflected, init 0, no final xor.
var crc8Table = makeTable8(0x8C)

// CRC-16/ARC (IBM): polynomial 0x8005, reflected, init 0, no final xor.
var crc16Table = makeTable16(0xA001)

func makeTable8(poly uint8) *[256]uint8 {
	var t [256]uint8
	for i := range t {
		crc := uint8(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

func makeTable16(poly uint16) *[256]uint16 {
	var t [256]uint16
	for i := range t {
		crc := uint16(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = crc>>1 ^ poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// CRC8 continues a CRC-8/MAXIM checksum over p. Start with crc = 0.
func CRC8(p []byte, crc uint8) uint8 {
	for _, b := range p {
		crc = crc8Table[crc^b]
	}
	return crc
}

// CRC16 continues a CRC-16/ARC checksum over p. Start with crc = 0.
func CRC16(p []byte, crc uint16) uint16 {
	for _, b := range p {
		crc = crc>>8 ^ crc16Table[byte(crc)^b]
	}
	return crc
}

// CRC32 continues an IEEE 802.3 CRC-32 checksum over p, the one used by zip
// and png. Start with crc = 0.
func CRC32(p []byte, crc uint32) uint32 {
	return crc32.Update(crc, crc32.IEEETable, p)
}
