package vm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// An image file is a flat header plus a load table: a 4-byte magic, a
// format version, a record count, and that many fixed-size records of
// {file offset, size, target address}. The VM core never consumes this
// format at run time — Flash takes a flat byte slice — it exists so an
// assembler or loader has a concrete, bit-for-bit agreed-upon way to
// describe where a program's pieces land in memory.

var loadTableMagic = [4]byte{'S', 'M', 'V', 'M'}

const loadTableVersion uint32 = 1

const loadRecordSize = 16 // file_offset u32, size u32, target_address u64

// LoadRecord describes one contiguous span of a file's payload and the
// address in M it is destined for.
type LoadRecord struct {
	FileOffset    uint32
	Size          uint32
	TargetAddress uint64
}

// LoadTable is a decoded header and record set together with the raw
// bytes it was read from, kept around so Flatten can slice payload
// spans straight out of it.
type LoadTable struct {
	Records []LoadRecord
	raw     []byte
}

// DecodeLoadTable reads the header and records from r. The remainder
// of r's bytes are retained as the payload records are sliced from.
func DecodeLoadTable(r io.Reader) (*LoadTable, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(raw) < 12 {
		return nil, fmt.Errorf("image truncated: header needs 12 bytes, got %d", len(raw))
	}
	if !bytes.Equal(raw[0:4], loadTableMagic[:]) {
		return nil, fmt.Errorf("bad image magic %q", raw[0:4])
	}
	version := binary.LittleEndian.Uint32(raw[4:8])
	if version != loadTableVersion {
		return nil, fmt.Errorf("unsupported image version %d", version)
	}
	count := binary.LittleEndian.Uint32(raw[8:12])

	header := 12 + int(count)*loadRecordSize
	if len(raw) < header {
		return nil, fmt.Errorf("image truncated: load table needs %d bytes, got %d", header, len(raw))
	}

	records := make([]LoadRecord, count)
	for i := range records {
		off := 12 + i*loadRecordSize
		records[i] = LoadRecord{
			FileOffset:    binary.LittleEndian.Uint32(raw[off : off+4]),
			Size:          binary.LittleEndian.Uint32(raw[off+4 : off+8]),
			TargetAddress: binary.LittleEndian.Uint64(raw[off+8 : off+16]),
		}
	}
	return &LoadTable{Records: records, raw: raw}, nil
}

// Flatten materializes the table's records into a single contiguous
// buffer of size memSize, suitable for Machine.Flash. A record whose
// file span or target span falls outside the respective buffer is
// rejected rather than silently truncated.
func (lt *LoadTable) Flatten(memSize int) ([]byte, error) {
	buf := make([]byte, memSize)
	for _, rec := range lt.Records {
		end := rec.FileOffset + rec.Size
		if int(end) > len(lt.raw) {
			return nil, fmt.Errorf("load record reads past end of file: offset %d size %d", rec.FileOffset, rec.Size)
		}
		if rec.TargetAddress+uint64(rec.Size) > uint64(memSize) {
			return nil, fmt.Errorf("load record target 0x%x+%d exceeds memory size %d", rec.TargetAddress, rec.Size, memSize)
		}
		copy(buf[rec.TargetAddress:], lt.raw[rec.FileOffset:end])
	}
	return buf, nil
}

// EncodeLoadTable serializes records followed by payload into a single
// file. Record FileOffset values must already account for the header
// and record table preceding the payload — callers that only need a
// single span at a known target should use EncodeImage instead.
func EncodeLoadTable(records []LoadRecord, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Write(loadTableMagic[:])
	_ = binary.Write(&buf, binary.LittleEndian, loadTableVersion)
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(records)))
	for _, rec := range records {
		_ = binary.Write(&buf, binary.LittleEndian, rec.FileOffset)
		_ = binary.Write(&buf, binary.LittleEndian, rec.Size)
		_ = binary.Write(&buf, binary.LittleEndian, rec.TargetAddress)
	}
	buf.Write(payload)
	return buf.Bytes()
}

// EncodeImage is the common case of EncodeLoadTable: a single record
// placing payload at target, header offset computed automatically.
func EncodeImage(payload []byte, target uint64) []byte {
	headerSize := uint32(12 + loadRecordSize)
	return EncodeLoadTable([]LoadRecord{{FileOffset: headerSize, Size: uint32(len(payload)), TargetAddress: target}}, payload)
}
