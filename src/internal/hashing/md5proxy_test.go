package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"
)

type errorReader struct {
	err error
}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, e.err
}

func TestNewMD5ReaderProxy(t *testing.T) {
	reader := strings.NewReader("test data")
	proxy := NewMD5ReaderProxy(reader)

	if proxy == nil {
		t.Fatal("Expected proxy to be non-nil")
	}

	if proxy.reader != reader {
		t.Error("Expected reader to be set correctly")
	}

	if proxy.checksum == nil {
		t.Error("Expected checksum to be initialized")
	}
}

func TestChecksumReaderProxy_Read(t *testing.T) {
	proxy := NewMD5ReaderProxy(strings.NewReader("hello world"))

	buf := make([]byte, 5)
	n, err := proxy.Read(buf)

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if n != 5 {
		t.Errorf("Expected to read 5 bytes, got %d", n)
	}

	if string(buf) != "hello" {
		t.Errorf("Expected 'hello', got '%s'", string(buf))
	}

	if proxy.Size() != 5 {
		t.Errorf("Expected size 5, got %d", proxy.Size())
	}
}

func TestChecksumReaderProxy_ReadError(t *testing.T) {
	expectedErr := errors.New("read error")
	proxy := NewMD5ReaderProxy(&errorReader{err: expectedErr})

	buf := make([]byte, 10)
	_, err := proxy.Read(buf)

	if err != expectedErr {
		t.Errorf("Expected error %v, got %v", expectedErr, err)
	}
}

func TestChecksumReaderProxy_GetChecksum(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"seed", `[{"icao":"YJUK","name":"Tjukurla Airport"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proxy := NewMD5ReaderProxy(strings.NewReader(tt.data))
			if _, err := io.ReadAll(proxy); err != nil {
				t.Fatalf("Failed to read data: %v", err)
			}

			checksum, err := proxy.GetChecksum()
			if err != nil {
				t.Fatalf("Unexpected error getting checksum: %v", err)
			}

			sum := md5.Sum([]byte(tt.data))
			if expected := hex.EncodeToString(sum[:]); checksum != expected {
				t.Errorf("Expected checksum %s, got %s", expected, checksum)
			}
			if proxy.Size() != int64(len(tt.data)) {
				t.Errorf("Expected size %d, got %d", len(tt.data), proxy.Size())
			}
		})
	}
}
