package rihmm

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
	DataTypeZlib
)

// ErrUnsupportedCompression is returned for recognized formats that cannot be
// decoded, currently Unix compress (.Z).
var ErrUnsupportedCompression = errors.New("unsupported compression")

// Byte code signatures from https://stackoverflow.com/a/19127748/199475. zlib
// streams start with a 0x78 CMF byte for a 32K window; the listed FLG bytes
// are the ones used for the standard compression levels.
var byteCodeSigs = map[DataType][][]byte{
	DataTypeGzip:  {{0x1f, 0x8b, 0x08}},
	DataTypeZip:   {{0x50, 0x4b, 0x03, 0x04}},
	DataTypeXZ:    {{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	DataTypeZ:     {{0x1f, 0x9d}},
	DataTypeBZip2: {{0x42, 0x5a, 0x68}},
	DataTypeZlib:  {{0x78, 0x01}, {0x78, 0x5e}, {0x78, 0x9c}, {0x78, 0xda}},
}

// DetectDataType identifies the compression of a stream from its first bytes.
// Anything unrecognized is assumed to be uncompressed.
func DetectDataType(head []byte) DataType {
	for dt, sigs := range byteCodeSigs {
		for _, sig := range sigs {
			if bytes.HasPrefix(head, sig) {
				return dt
			}
		}
	}

	return DataTypeNoCompression
}

// OpenInput opens a local file, or a gs://bucket/object path if client is
// non-nil, and transparently decompresses it.
func OpenInput(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	raw, err := openRaw(ctx, path, client)
	if err != nil {
		return nil, err
	}

	br := bufio.NewReader(raw)
	head, err := br.Peek(6)
	if err != nil && !errors.Is(err, io.EOF) {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	out, err := decompress(DetectDataType(head), br)
	if err != nil {
		raw.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return &stackedReadCloser{Reader: out, closers: closersOf(out, raw)}, nil
}

func openRaw(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if client != nil && strings.HasPrefix(path, "gs://") {
		pathParts := strings.SplitN(strings.TrimPrefix(path, "gs://"), "/", 2)
		if len(pathParts) != 2 {
			return nil, fmt.Errorf("Tried to split your google storage path into 2 parts, but got %d: %v", len(pathParts), pathParts)
		}

		rdr, err := client.Bucket(pathParts[0]).Object(pathParts[1]).NewReader(ctx)
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
		}

		return rdr, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	return os.Open(path)
}

// expandHome expands a leading ~/ to the current user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", pfx.Err(err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}

func decompress(dt DataType, r io.Reader) (io.Reader, error) {
	switch dt {
	case DataTypeGzip:
		return gzip.NewReader(r)
	case DataTypeZip:
		// Only the first entry of an archive is read
		zr := zipstream.NewReader(r)
		if _, err := zr.Next(); err != nil {
			return nil, err
		}
		return zr, nil
	case DataTypeBZip2:
		return bzip2.NewReader(r), nil
	case DataTypeXZ:
		return xz.NewReader(r, 0)
	case DataTypeZlib:
		return zlib.NewReader(r)
	case DataTypeZ:
		return nil, fmt.Errorf("%w: Unix compress (.Z); decompress the file first", ErrUnsupportedCompression)
	}

	return r, nil
}

func closersOf(rs ...interface{}) []io.Closer {
	out := make([]io.Closer, 0, len(rs))
	for _, r := range rs {
		if c, ok := r.(io.Closer); ok {
			out = append(out, c)
		}
	}
	return out
}

// stackedReadCloser closes a decompressor and the stream beneath it.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var firstErr error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}
