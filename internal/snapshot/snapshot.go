package snapshot

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	natom "github.com/natefinch/atomic"

	"github.com/nburk/ordmap/pkg/ordmap"
)

const (
	magic         uint32 = 0x4f52444d // "ORDM"
	formatVersion uint32 = 1
)

// Save writes m's logical contents to path atomically and durably: a
// complete temp file is written and fsynced, then renamed over path, so a
// reader never observes a partially-written snapshot.
func Save(path string, m *ordmap.Map[string, string]) error {
	var body bytes.Buffer

	if err := binary.Write(&body, binary.LittleEndian, uint32(m.Len())); err != nil {
		return fmt.Errorf("snapshot: encode count: %w", err)
	}

	for k, v := range m.All() {
		if err := writeString(&body, k); err != nil {
			return fmt.Errorf("snapshot: encode key %q: %w", k, err)
		}

		if err := writeString(&body, v); err != nil {
			return fmt.Errorf("snapshot: encode value for key %q: %w", k, err)
		}
	}

	var header bytes.Buffer
	_ = binary.Write(&header, binary.LittleEndian, magic)
	_ = binary.Write(&header, binary.LittleEndian, formatVersion)
	_ = binary.Write(&header, binary.LittleEndian, crc32.ChecksumIEEE(body.Bytes()))

	var out bytes.Buffer
	out.Write(header.Bytes())
	out.Write(body.Bytes())

	if err := natom.WriteFile(path, &out); err != nil {
		return fmt.Errorf("snapshot: write %q: %w", path, err)
	}

	return nil
}

// Load restores a Map previously written by [Save]. Use [os.IsNotExist] on
// the returned error to detect "no snapshot yet" separately from a genuinely
// corrupt or incompatible file.
func Load(path string) (*ordmap.Map[string, string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	r := bytes.NewReader(data)

	var gotMagic uint32
	if err := binary.Read(r, binary.LittleEndian, &gotMagic); err != nil {
		return nil, fmt.Errorf("%w: %q: reading magic: %v", ErrCorrupt, path, err)
	}

	if gotMagic != magic {
		return nil, fmt.Errorf("%w: %q: bad magic", ErrIncompatible, path)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("%w: %q: reading version: %v", ErrCorrupt, path, err)
	}

	if version != formatVersion {
		return nil, fmt.Errorf("%w: %q: format version %d, want %d", ErrIncompatible, path, version, formatVersion)
	}

	var checksum uint32
	if err := binary.Read(r, binary.LittleEndian, &checksum); err != nil {
		return nil, fmt.Errorf("%w: %q: reading checksum: %v", ErrCorrupt, path, err)
	}

	bodyStart := len(data) - r.Len()
	body := data[bodyStart:]

	if crc32.ChecksumIEEE(body) != checksum {
		return nil, fmt.Errorf("%w: %q: checksum mismatch", ErrCorrupt, path)
	}

	br := bytes.NewReader(body)

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %q: reading entry count: %v", ErrCorrupt, path, err)
	}

	m := ordmap.New[string, string]()

	for i := uint32(0); i < count; i++ {
		key, err := readString(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: reading key %d: %v", ErrCorrupt, path, i, err)
		}

		value, err := readString(br)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: reading value %d: %v", ErrCorrupt, path, i, err)
		}

		m.Insert(key, value)
	}

	return m, nil
}

func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(s))); err != nil {
		return err
	}

	_, err := io.WriteString(w, s)

	return err
}

func readString(r *bytes.Reader) (string, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}

	return string(buf), nil
}
