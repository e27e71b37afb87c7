// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-secure-api/internal/failure"
)

// DefaultMaxBodySize is the request body ceiling (100 KiB).
const DefaultMaxBodySize int64 = 100 << 10

// readChunkSize is how many bytes are pulled from the connection per read.
const readChunkSize = 4 << 10

// ReadBody reads the body of r, allowing at most maxBytes.
//
// A declared Content-Length above the ceiling is rejected before anything is
// read. Otherwise the body is wrapped in [http.MaxBytesReader] and consumed
// in chunks of readChunkSize; the first chunk that pushes the total over the
// ceiling aborts the read. In both cases the response is marked
// "Connection: close" so the server drops the connection after the 413 and
// the rest of the body is never read.
func ReadBody(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	if r.ContentLength > maxBytes {
		w.Header().Set("Connection", "close")
		return nil, tooLarge(maxBytes)
	}

	if r.Body == nil {
		return nil, nil
	}

	body := http.MaxBytesReader(w, r.Body, maxBytes)
	defer body.Close()

	data, err := ReadLimited(body, maxBytes)
	if err != nil && failure.KindOf(err) == failure.BodyTooLarge {
		w.Header().Set("Connection", "close")
	}

	return data, err
}

// ReadLimited reads src to EOF in fixed-size chunks and fails with a
// BodyTooLarge failure the moment more than maxBytes have arrived. At most
// maxBytes+readChunkSize bytes are ever pulled from src.
func ReadLimited(src io.Reader, maxBytes int64) ([]byte, error) {
	var (
		buf   bytes.Buffer
		total int64
		chunk = make([]byte, readChunkSize)
	)

	for {
		n, err := src.Read(chunk)
		total += int64(n)
		if total > maxBytes {
			return nil, tooLarge(maxBytes)
		}
		buf.Write(chunk[:n])

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return buf.Bytes(), nil
		default:
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				return nil, tooLarge(maxBytes)
			}
			return nil, failure.Wrap(failure.DecodeFailed, fmt.Errorf("%w: %w", ErrBodyRead, err), "body read aborted")
		}
	}
}

func tooLarge(maxBytes int64) error {
	return failure.Wrap(failure.BodyTooLarge, ErrBodyTooLarge, fmt.Sprintf("body exceeds %d bytes", maxBytes))
}
